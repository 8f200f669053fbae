package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"salon-booking/internal/models"
	"salon-booking/internal/validator"
)

const (
	ServicesKey = "nail_salon_services"
	SettingsKey = "nail_salon_settings"
)

// Catalog reads and writes the service list and shop settings. Missing or
// unreadable records fall back to the built-in defaults.
type Catalog struct {
	kv  KV
	log zerolog.Logger
}

// NewCatalog creates a catalog on top of kv
func NewCatalog(kv KV, logger zerolog.Logger) *Catalog {
	return &Catalog{
		kv:  kv,
		log: logger.With().Str("component", "Catalog").Logger(),
	}
}

// Services returns the persisted service list
func (c *Catalog) Services() []models.Service {
	var services []models.Service
	if !c.read(ServicesKey, &services) || services == nil {
		return models.DefaultServices()
	}
	return services
}

// SaveServices overwrites the whole service list
func (c *Catalog) SaveServices(services []models.Service) error {
	if services == nil {
		services = []models.Service{}
	}
	return c.write(ServicesKey, services)
}

// Settings returns the persisted shop settings. A record that decodes but
// lacks required fields, such as null or {}, counts as corrupt.
func (c *Catalog) Settings() models.ShopSettings {
	var settings models.ShopSettings
	if !c.read(SettingsKey, &settings) {
		return models.DefaultSettings()
	}
	if errs := validator.Validate(settings); errs != nil {
		c.log.Warn().Str("key", SettingsKey).Str("errors", validator.Summary(errs)).Msg("Invalid settings record, using defaults")
		return models.DefaultSettings()
	}
	return settings
}

// SaveSettings overwrites the shop settings
func (c *Catalog) SaveSettings(settings models.ShopSettings) error {
	return c.write(SettingsKey, settings)
}

func (c *Catalog) read(key string, v interface{}) bool {
	data, err := c.kv.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Error reading record, using defaults")
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Corrupt record, using defaults")
		return false
	}
	return true
}

func (c *Catalog) write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := c.kv.Put(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
