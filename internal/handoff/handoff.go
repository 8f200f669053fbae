package handoff

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"salon-booking/internal/models"
)

// DefaultResetDelay gives the external chat time to open before the wizard clears
const DefaultResetDelay = 1500 * time.Millisecond

// Opener delivers a handoff link to the external messaging channel
type Opener interface {
	Open(ctx context.Context, link Link) error
}

// Wizard is the booking flow being handed off
type Wizard interface {
	Summary() (models.Booking, error)
	Reset()
}

// Service hands completed bookings off and resets the wizard afterwards
type Service struct {
	opener    Opener
	delay     time.Duration
	log       zerolog.Logger
	afterFunc func(time.Duration, func()) *time.Timer
}

// NewService creates a handoff service
func NewService(opener Opener, delay time.Duration, logger zerolog.Logger) *Service {
	if delay < 0 {
		delay = DefaultResetDelay
	}
	return &Service{
		opener:    opener,
		delay:     delay,
		log:       logger.With().Str("component", "Handoff").Logger(),
		afterFunc: time.AfterFunc,
	}
}

// Confirm opens the link for the wizard's completed booking and schedules a
// full wizard reset once the delay has elapsed. The wizard is left untouched
// when the booking is incomplete or the link cannot be opened.
func (s *Service) Confirm(ctx context.Context, wizard Wizard, settings models.ShopSettings) (Link, error) {
	booking, err := wizard.Summary()
	if err != nil {
		return Link{}, err
	}

	link, err := Build(booking, settings)
	if err != nil {
		return Link{}, err
	}

	if err := s.opener.Open(ctx, link); err != nil {
		s.log.Error().Err(err).Str("contact", link.Contact).Msg("Failed to open handoff link")
		return Link{}, fmt.Errorf("failed to open handoff link: %w", err)
	}

	s.log.Info().
		Str("service", booking.Service.Name).
		Str("date", booking.Date.Format("2006-01-02")).
		Str("time", booking.Time).
		Str("payment", string(booking.PaymentMethod)).
		Msg("Booking handed off")

	s.afterFunc(s.delay, wizard.Reset)
	return link, nil
}
