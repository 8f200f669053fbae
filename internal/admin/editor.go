package admin

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"salon-booking/internal/models"
	"salon-booking/internal/slots"
	"salon-booking/internal/validator"
)

var (
	ErrServiceNotFound = errors.New("admin: service not found")
	ErrUnknownField    = errors.New("admin: unknown field")
	ErrInvalidValue    = errors.New("admin: invalid value")
	ErrInvalidSettings = errors.New("admin: invalid settings")
	ErrInvalidServices = errors.New("admin: invalid services")
)

// Field names an editable attribute of a Service or of ShopSettings
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldCategory    Field = "category"
	FieldDuration    Field = "durationMinutes"
	FieldPrice       Field = "price"

	FieldShopName    Field = "shopName"
	FieldPhoneNumber Field = "phoneNumber"
	FieldOpeningTime Field = "openingTime"
	FieldClosingTime Field = "closingTime"
	FieldCurrency    Field = "currency"
)

// Store persists the catalog
type Store interface {
	Services() []models.Service
	SaveServices([]models.Service) error
	Settings() models.ShopSettings
	SaveSettings(models.ShopSettings) error
}

// Editor holds local drafts of the service list and settings. Nothing is
// written until SaveServices or SaveSettings, and each save overwrites the
// whole record.
type Editor struct {
	store    Store
	session  *Session
	services []models.Service
	settings models.ShopSettings
	newID    func() string
	log      zerolog.Logger
}

// NewEditor loads drafts from store
func NewEditor(store Store, session *Session, logger zerolog.Logger) *Editor {
	e := &Editor{
		store:   store,
		session: session,
		newID:   uuid.NewString,
		log:     logger.With().Str("component", "Admin").Logger(),
	}
	e.Reload()
	return e
}

// Reload discards unsaved edits
func (e *Editor) Reload() {
	e.services = append([]models.Service(nil), e.store.Services()...)
	e.settings = e.store.Settings()
}

// Services returns a copy of the draft service list
func (e *Editor) Services() []models.Service {
	return append([]models.Service(nil), e.services...)
}

// Settings returns the draft settings
func (e *Editor) Settings() models.ShopSettings {
	return e.settings
}

// AddService appends a service with placeholder values
func (e *Editor) AddService() (models.Service, error) {
	if !e.session.Authenticated() {
		return models.Service{}, ErrUnauthorized
	}
	svc := models.Service{
		ID:              e.newID(),
		Name:            "New Service",
		Description:     "Service description",
		Category:        "Nail Services",
		DurationMinutes: 60,
		Price:           0,
	}
	e.services = append(e.services, svc)
	return svc, nil
}

// UpdateService sets one field of the service with the given id. An unknown
// id leaves the list unchanged.
func (e *Editor) UpdateService(id string, field Field, value string) error {
	if !e.session.Authenticated() {
		return ErrUnauthorized
	}
	for i := range e.services {
		if e.services[i].ID != id {
			continue
		}
		return setServiceField(&e.services[i], field, value)
	}
	return nil
}

func setServiceField(svc *models.Service, field Field, value string) error {
	switch field {
	case FieldName:
		svc.Name = value
	case FieldDescription:
		svc.Description = value
	case FieldCategory:
		svc.Category = value
	case FieldDuration:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: duration must be a positive number of minutes", ErrInvalidValue)
		}
		svc.DurationMinutes = n
	case FieldPrice:
		p, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || p < 0 {
			return fmt.Errorf("%w: price must be a non-negative number", ErrInvalidValue)
		}
		svc.Price = p
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// RemoveService deletes the service with the given id once confirm agrees
func (e *Editor) RemoveService(id string, confirm func(models.Service) bool) error {
	if !e.session.Authenticated() {
		return ErrUnauthorized
	}
	for i, s := range e.services {
		if s.ID != id {
			continue
		}
		if confirm != nil && !confirm(s) {
			return nil
		}
		e.services = append(e.services[:i:i], e.services[i+1:]...)
		return nil
	}
	return ErrServiceNotFound
}

// SaveServices validates and persists the whole draft list
func (e *Editor) SaveServices() error {
	if !e.session.Authenticated() {
		return ErrUnauthorized
	}
	for _, s := range e.services {
		if errs := validator.Validate(s); errs != nil {
			return fmt.Errorf("%w: %s: %s", ErrInvalidServices, s.Name, validator.Summary(errs))
		}
	}
	if err := e.store.SaveServices(e.Services()); err != nil {
		return err
	}
	e.log.Info().Int("count", len(e.services)).Msg("Services saved")
	return nil
}

// UpdateSettings sets one field of the settings draft
func (e *Editor) UpdateSettings(field Field, value string) error {
	if !e.session.Authenticated() {
		return ErrUnauthorized
	}
	switch field {
	case FieldShopName:
		e.settings.ShopName = value
	case FieldPhoneNumber:
		e.settings.PhoneNumber = value
	case FieldOpeningTime:
		e.settings.OpeningTime = value
	case FieldClosingTime:
		e.settings.ClosingTime = value
	case FieldCurrency:
		e.settings.Currency = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// SaveSettings validates and persists the settings draft. Opening time must
// be earlier than closing time.
func (e *Editor) SaveSettings() error {
	if !e.session.Authenticated() {
		return ErrUnauthorized
	}
	if err := ValidateSettings(e.settings); err != nil {
		return err
	}
	if err := e.store.SaveSettings(e.settings); err != nil {
		return err
	}
	e.log.Info().Str("shop", e.settings.ShopName).Msg("Settings saved")
	return nil
}

// ValidateSettings checks field formats and that the shop opens before it closes
func ValidateSettings(s models.ShopSettings) error {
	if errs := validator.Validate(s); errs != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, validator.Summary(errs))
	}
	open, _ := slots.ParseClock(s.OpeningTime)
	closing, _ := slots.ParseClock(s.ClosingTime)
	if open >= closing {
		return fmt.Errorf("%w: opening time must be before closing time", ErrInvalidSettings)
	}
	return nil
}
