package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"salon-booking/internal/models"
)

const (
	Greeting      = "Hello! 👋 I'm Kisha's AI assistant. How can I help you with your glow-up today?"
	EmptyReply    = "I'm sorry, I couldn't understand that right now. ✨"
	FallbackReply = "Oops! My connection is a bit fuzzy. Please try again later or contact the shop directly. 💅"
)

// Catalog supplies the shop facts the assistant is grounded on
type Catalog interface {
	Services() []models.Service
	Settings() models.ShopSettings
}

// Assistant answers customer questions. Failures never reach the caller:
// they are logged and replaced by FallbackReply.
type Assistant struct {
	client  Client
	catalog Catalog
	log     zerolog.Logger
}

// New creates an assistant. A nil client behaves like a missing credential.
func New(client Client, catalog Catalog, logger zerolog.Logger) *Assistant {
	return &Assistant{
		client:  client,
		catalog: catalog,
		log:     logger.With().Str("component", "Assistant").Logger(),
	}
}

// Reply answers one user message. Each call is independent; no history is sent.
func (a *Assistant) Reply(ctx context.Context, message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return ""
	}
	if a.client == nil {
		a.log.Warn().Err(ErrMissingCredential).Msg("Assistant unavailable")
		return FallbackReply
	}

	reply, err := a.client.Complete(ctx, Request{
		System:  SystemInstruction(a.catalog.Settings(), a.catalog.Services()),
		Message: message,
	})
	if err != nil {
		a.log.Error().Err(err).Msg("AI error")
		return FallbackReply
	}
	if strings.TrimSpace(reply) == "" {
		return EmptyReply
	}
	return reply
}

// SystemInstruction describes the shop, its services and the reply rules
func SystemInstruction(settings models.ShopSettings, services []models.Service) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the AI Beauty Assistant for %q, a high-end nail and braiding salon.\n", settings.ShopName)
	b.WriteString("Your goal is to be friendly, professional, and helpful.\n")
	b.WriteString("You speak English.\n")
	b.WriteString("Use emojis occasionally to be friendly ✨.\n\n")

	b.WriteString("Key Information about the Shop:\n")
	fmt.Fprintf(&b, "- Name: %s\n", settings.ShopName)
	fmt.Fprintf(&b, "- Phone: +%s\n", settings.PhoneNumber)
	fmt.Fprintf(&b, "- Opening hours: %s - %s\n", settings.OpeningTime, settings.ClosingTime)
	b.WriteString("- Payment methods: ")
	for i, m := range models.PaymentMethods {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(m))
	}
	b.WriteString(".\n")
	fmt.Fprintf(&b, "- Deposit Policy: %s non-refundable deposit required.\n", models.FormatPrice(settings.Currency, 20))
	b.WriteString("- Location: (If asked, say \"We are located in the heart of the city, please contact us for the exact address.\")\n\n")

	b.WriteString("Services Offered:\n")
	for _, s := range services {
		fmt.Fprintf(&b, "- %s: %s (%d min)\n", s.Name, models.FormatPrice(settings.Currency, s.Price), s.DurationMinutes)
	}

	b.WriteString("\nRules:\n")
	b.WriteString("1. Answer questions about services, prices, and booking.\n")
	b.WriteString("2. If a user wants to book, guide them to use the main booking form.\n")
	b.WriteString("3. Do not make up services that are not listed.\n")
	b.WriteString("4. Keep answers concise (under 50 words usually).\n")

	return b.String()
}
