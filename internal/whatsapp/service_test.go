package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := map[string]string{
		"17812580779":       "17812580779",
		"+1 (781) 258-0779": "17812580779",
		"0044 20 7946 0958": "442079460958",
		"":                  "",
		"call me":           "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizePhoneNumber(in), in)
	}
}

func TestMessageText(t *testing.T) {
	conversation := "hello"
	extended := "quoted reply"

	assert.Equal(t, "hello", MessageText(&events.Message{Message: &waE2E.Message{Conversation: &conversation}}))
	assert.Equal(t, "quoted reply", MessageText(&events.Message{Message: &waE2E.Message{
		ExtendedTextMessage: &waE2E.ExtendedTextMessage{Text: &extended},
	}}))
	assert.Empty(t, MessageText(&events.Message{}))
	assert.Empty(t, MessageText(nil))
}

func TestSenderPhone(t *testing.T) {
	msg := &events.Message{}
	msg.Info.Sender = types.NewJID("15551234567", types.DefaultUserServer)

	assert.Equal(t, "15551234567", SenderPhone(msg))
}
