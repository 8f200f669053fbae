package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon-booking/internal/models"
)

type staticCatalog struct{}

func (staticCatalog) Services() []models.Service { return models.DefaultServices() }
func (staticCatalog) Settings() models.ShopSettings { return models.DefaultSettings() }

type fakeClient struct {
	reply string
	err   error
	calls []Request
}

func (f *fakeClient) Complete(_ context.Context, req Request) (string, error) {
	f.calls = append(f.calls, req)
	return f.reply, f.err
}

func TestAssistant_Reply(t *testing.T) {
	client := &fakeClient{reply: "A gel manicure is $35 ✨"}
	a := New(client, staticCatalog{}, zerolog.Nop())

	got := a.Reply(context.Background(), "  how much is a gel manicure? ")

	assert.Equal(t, "A gel manicure is $35 ✨", got)
	require.Len(t, client.calls, 1)
	assert.Equal(t, "how much is a gel manicure?", client.calls[0].Message)
	assert.Contains(t, client.calls[0].System, "Gel Manicure: $35 (45 min)")
}

func TestAssistant_ReplyIsStateless(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	a := New(client, staticCatalog{}, zerolog.Nop())

	a.Reply(context.Background(), "first")
	a.Reply(context.Background(), "second")

	require.Len(t, client.calls, 2)
	assert.Equal(t, "second", client.calls[1].Message)
	assert.NotContains(t, client.calls[1].System, "first")
}

func TestAssistant_Fallbacks(t *testing.T) {
	tests := []struct {
		name   string
		client Client
		want   string
	}{
		{"missing credential", nil, FallbackReply},
		{"remote error", &fakeClient{err: errors.New("network down")}, FallbackReply},
		{"empty reply", &fakeClient{reply: "  "}, EmptyReply},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(tt.client, staticCatalog{}, zerolog.Nop())
			assert.Equal(t, tt.want, a.Reply(context.Background(), "hi"))
		})
	}
}

func TestAssistant_BlankMessageSkipsClient(t *testing.T) {
	client := &fakeClient{reply: "unused"}
	a := New(client, staticCatalog{}, zerolog.Nop())

	assert.Empty(t, a.Reply(context.Background(), "   "))
	assert.Empty(t, client.calls)
}

func TestSystemInstruction(t *testing.T) {
	settings := models.DefaultSettings()
	prompt := SystemInstruction(settings, models.DefaultServices())

	assert.Contains(t, prompt, `"KISHA BEAUTY BOX"`)
	assert.Contains(t, prompt, "- Phone: +17812580779")
	assert.Contains(t, prompt, "- Payment methods: Cash, Zelle, CashApp.")
	assert.Contains(t, prompt, "$20 non-refundable deposit")
	assert.Contains(t, prompt, "- Knotless Braids (Small): $180 (240 min)")
	assert.Contains(t, prompt, "3. Do not make up services that are not listed.")
}

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), " ", "")
	assert.ErrorIs(t, err, ErrMissingCredential)
}
