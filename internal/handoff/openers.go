package handoff

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/skip2/go-qrcode"
)

// QROpener prints the link and a scannable QR code so the customer can
// continue the chat on their own phone.
type QROpener struct {
	Out io.Writer
}

// Open writes the link to Out
func (o QROpener) Open(_ context.Context, link Link) error {
	q, err := qrcode.New(link.URL, qrcode.Low)
	if err != nil {
		// Links too long for a QR code are still usable as text
		_, werr := fmt.Fprintf(o.Out, "\nOpen this link to send your booking:\n%s\n", link.URL)
		return werr
	}
	_, err = fmt.Fprintf(o.Out, "\n%s\n📱 Scan the QR code above or open this link to send your booking:\n%s\n",
		q.ToSmallString(false), link.URL)
	return err
}

// Sender sends a text message to a phone number
type Sender interface {
	SendMessage(ctx context.Context, phoneNumber, message string) error
}

// SenderOpener delivers the message directly from a linked messaging account
type SenderOpener struct {
	Sender Sender
}

// Open sends the confirmation text to the shop contact
func (o SenderOpener) Open(ctx context.Context, link Link) error {
	return o.Sender.SendMessage(ctx, link.Contact, link.Message)
}

// MultiOpener opens the link with every opener and succeeds if any of them does
type MultiOpener []Opener

// Open tries each opener in order
func (m MultiOpener) Open(ctx context.Context, link Link) error {
	var errs []error
	for _, o := range m {
		if err := o.Open(ctx, link); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == len(m) {
		if len(errs) == 0 {
			return errors.New("handoff: no opener configured")
		}
		return errors.Join(errs...)
	}
	return nil
}
