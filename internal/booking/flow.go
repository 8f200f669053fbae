package booking

import (
	"errors"
	"strings"
	"sync"
	"time"

	"salon-booking/internal/models"
	"salon-booking/internal/slots"
)

var (
	ErrWrongStep            = errors.New("booking: action not available at this step")
	ErrValidationBlocked    = errors.New("booking: name and payment method are required")
	ErrDateRequired         = errors.New("booking: select a date first")
	ErrDateUnavailable      = errors.New("booking: date is outside the booking window")
	ErrSlotUnavailable      = errors.New("booking: time slot is not available")
	ErrInvalidPaymentMethod = errors.New("booking: unsupported payment method")
)

// DefaultWindowDays is how many calendar days, starting today, can be booked
const DefaultWindowDays = 14

// Flow is the four-step booking wizard. The current step is always derived
// from the stored step and the fields filled in so far, so a step can never
// be reached while an earlier step's selection is missing.
type Flow struct {
	mu         sync.Mutex
	state      models.BookingState
	step       Step
	settings   models.ShopSettings
	windowDays int
	now        func() time.Time
}

// Option configures a Flow
type Option func(*Flow)

// WithClock overrides the wall clock used for dates and same-day slots
func WithClock(now func() time.Time) Option {
	return func(f *Flow) { f.now = now }
}

// WithWindowDays sets how many days ahead a booking can be made
func WithWindowDays(days int) Option {
	return func(f *Flow) {
		if days > 0 {
			f.windowDays = days
		}
	}
}

// NewFlow creates an empty wizard for the given shop
func NewFlow(settings models.ShopSettings, opts ...Option) *Flow {
	f := &Flow{
		step:       SelectingService,
		settings:   settings,
		windowDays: DefaultWindowDays,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Settings returns the shop settings the wizard was created with
func (f *Flow) Settings() models.ShopSettings {
	return f.settings
}

// Step returns the current wizard step
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current()
}

// State returns a copy of the in-progress selection
func (f *Flow) State() models.BookingState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyState(f.state)
}

// SelectService picks the service and moves to date selection. A date or
// time left over from an earlier pass is cleared.
func (f *Flow) SelectService(svc models.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current() != SelectingService {
		return ErrWrongStep
	}
	f.state.SelectedService = &svc
	f.state.SelectedDate = nil
	f.state.SelectedTime = ""
	f.step = SelectingDateTime
	return nil
}

// Dates returns the calendar dates offered for booking
func (f *Flow) Dates() []time.Time {
	return slots.AvailableDates(f.now(), f.windowDays)
}

// SelectDate sets the appointment day and invalidates any chosen time
func (f *Flow) SelectDate(date time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current() != SelectingDateTime {
		return ErrWrongStep
	}
	now := f.now()
	if !slots.InWindow(date, now, f.windowDays) {
		return ErrDateUnavailable
	}
	day := slots.StartOfDay(date.In(now.Location()))
	f.state.SelectedDate = &day
	f.state.SelectedTime = ""
	return nil
}

// Slots returns the start times offered for the selected service and date
func (f *Flow) Slots() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.slots()
}

func (f *Flow) slots() []string {
	if f.state.SelectedService == nil || f.state.SelectedDate == nil {
		return nil
	}
	return slots.GenerateTimeSlots(
		*f.state.SelectedDate,
		f.state.SelectedService.DurationMinutes,
		f.settings.OpeningTime,
		f.settings.ClosingTime,
		f.now(),
	)
}

// SelectTime picks one of the current slots and advances to the details step
func (f *Flow) SelectTime(value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current() != SelectingDateTime {
		return ErrWrongStep
	}
	if f.state.SelectedDate == nil {
		return ErrDateRequired
	}
	for _, s := range f.slots() {
		if s == value {
			f.state.SelectedTime = value
			f.step = EnteringDetails
			return nil
		}
	}
	return ErrSlotUnavailable
}

// SetCustomerName stores the name as typed
func (f *Flow) SetCustomerName(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current() != EnteringDetails {
		return ErrWrongStep
	}
	f.state.CustomerName = name
	return nil
}

// SetPaymentMethod stores the chosen payment method
func (f *Flow) SetPaymentMethod(method models.PaymentMethod) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current() != EnteringDetails {
		return ErrWrongStep
	}
	if !method.Valid() {
		return ErrInvalidPaymentMethod
	}
	f.state.PaymentMethod = method
	return nil
}

// CanContinue reports whether the details step may advance to the summary
func (f *Flow) CanContinue() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current() == EnteringDetails && detailsComplete(f.state)
}

// Continue moves from the details step to the summary
func (f *Flow) Continue() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current() != EnteringDetails {
		return ErrWrongStep
	}
	if !detailsComplete(f.state) {
		return ErrValidationBlocked
	}
	f.step = ReviewingSummary
	return nil
}

// Back returns to the previous step without clearing any selection
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.current() {
	case SelectingDateTime:
		f.step = SelectingService
	case EnteringDetails:
		f.step = SelectingDateTime
	case ReviewingSummary:
		f.step = EnteringDetails
	default:
		return ErrWrongStep
	}
	return nil
}

// Summary returns the completed booking shown on the review step
func (f *Flow) Summary() (models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.current() != ReviewingSummary {
		return models.Booking{}, ErrWrongStep
	}
	return models.Booking{
		Service:       *f.state.SelectedService,
		Date:          *f.state.SelectedDate,
		Time:          f.state.SelectedTime,
		CustomerName:  strings.TrimSpace(f.state.CustomerName),
		PaymentMethod: f.state.PaymentMethod,
	}, nil
}

// Reset clears every selection and returns to the first step
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = models.BookingState{}
	f.step = SelectingService
}

// current clamps the stored step to the furthest step whose prerequisites
// are filled in.
func (f *Flow) current() Step {
	reachable := ReviewingSummary
	switch {
	case f.state.SelectedService == nil:
		reachable = SelectingService
	case f.state.SelectedDate == nil, f.state.SelectedTime == "":
		reachable = SelectingDateTime
	case !detailsComplete(f.state):
		reachable = EnteringDetails
	}

	if f.step < SelectingService {
		return SelectingService
	}
	return min(f.step, reachable)
}

func detailsComplete(st models.BookingState) bool {
	return strings.TrimSpace(st.CustomerName) != "" && st.PaymentMethod.Valid()
}

func copyState(st models.BookingState) models.BookingState {
	out := st
	if st.SelectedService != nil {
		svc := *st.SelectedService
		out.SelectedService = &svc
	}
	if st.SelectedDate != nil {
		d := *st.SelectedDate
		out.SelectedDate = &d
	}
	return out
}
