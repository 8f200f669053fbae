package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mau.fi/whatsmeow/types/events"

	"salon-booking/internal/models"
	"salon-booking/internal/whatsapp"
)

// Replier answers a customer question
type Replier interface {
	Reply(ctx context.Context, message string) string
}

// Sender sends a text message to a phone number
type Sender interface {
	SendMessage(ctx context.Context, phoneNumber, message string) error
}

// Catalog supplies the services and settings shown in the menu
type Catalog interface {
	Services() []models.Service
	Settings() models.ShopSettings
}

type ChatHandler struct {
	sender    Sender
	assistant Replier
	catalog   Catalog
	timeout   time.Duration
}

// NewChatHandler creates a handler that answers customer chats
func NewChatHandler(sender Sender, assistant Replier, catalog Catalog) *ChatHandler {
	return &ChatHandler{
		sender:    sender,
		assistant: assistant,
		catalog:   catalog,
		timeout:   30 * time.Second,
	}
}

// HandleMessage answers an incoming WhatsApp message. Menu keywords get the
// price list directly; anything else goes to the assistant.
func (h *ChatHandler) HandleMessage(msg *events.Message) error {
	text := strings.TrimSpace(whatsapp.MessageText(msg))
	if text == "" {
		return nil
	}

	phoneNumber := whatsapp.SenderPhone(msg)
	if phoneNumber == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	var reply string
	if containsAny(strings.ToLower(text), "menu", "services", "prices", "price list") {
		reply = FormatMenu(h.catalog.Settings(), h.catalog.Services())
	} else {
		reply = h.assistant.Reply(ctx, text)
	}
	if reply == "" {
		return nil
	}

	if err := h.sender.SendMessage(ctx, phoneNumber, reply); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}
	return nil
}

// FormatMenu lists services grouped by category
func FormatMenu(settings models.ShopSettings, services []models.Service) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💅 *%s*\n", settings.ShopName)
	for _, group := range models.GroupByCategory(services) {
		fmt.Fprintf(&b, "\n*%s*\n", group.Category)
		for _, s := range group.Services {
			fmt.Fprintf(&b, "- %s: %s (%d min)\n", s.Name, models.FormatPrice(settings.Currency, s.Price), s.DurationMinutes)
		}
	}
	fmt.Fprintf(&b, "\nOpen daily %s - %s.", settings.OpeningTime, settings.ClosingTime)
	return b.String()
}

// containsAny checks if the text contains any of the given keywords
func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
