package handoff

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"salon-booking/internal/models"
	"salon-booking/internal/validator"
)

// BaseURL is the click-to-chat endpoint the booking is handed off to
const BaseURL = "https://wa.me/"

var (
	ErrMissingContact    = errors.New("handoff: shop contact number is not configured")
	ErrIncompleteBooking = errors.New("handoff: booking is incomplete")
)

// Link is a formatted booking confirmation and the deep link carrying it
type Link struct {
	Contact string
	Message string
	URL     string
}

// FormatMessage renders the confirmation text sent to the shop
func FormatMessage(b models.Booking, settings models.ShopSettings) string {
	return fmt.Sprintf(
		"Hello, I would like to confirm my booking at %s:\n"+
			"✨ *Service*: %s\n"+
			"📅 *Date*: %s\n"+
			"🕒 *Time*: %s\n"+
			"👤 *Name*: %s\n"+
			"💰 *Price*: %s\n"+
			"💳 *Payment*: %s\n\n"+
			"Please confirm my appointment.",
		settings.ShopName,
		b.Service.Name,
		b.LongDate(),
		b.Time,
		b.CustomerName,
		models.FormatPrice(settings.Currency, b.Total()),
		b.PaymentMethod,
	)
}

// BuildURL addresses contact with message prefilled as the chat body
func BuildURL(contact, message string) string {
	return BaseURL + contact + "?text=" + encodeComponent(message)
}

// Build formats the booking and its deep link
func Build(b models.Booking, settings models.ShopSettings) (Link, error) {
	if errs := validator.Validate(b); errs != nil {
		return Link{}, fmt.Errorf("%w: %s", ErrIncompleteBooking, validator.Summary(errs))
	}
	contact := digitsOnly(settings.PhoneNumber)
	if contact == "" {
		return Link{}, ErrMissingContact
	}
	message := FormatMessage(b, settings)
	return Link{
		Contact: contact,
		Message: message,
		URL:     BuildURL(contact, message),
	}, nil
}

// encodeComponent percent-encodes like a URI component, spaces as %20
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
