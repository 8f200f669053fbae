package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DataDir        string
	StorageBackend string

	AdminPassword string

	GeminiAPIKey string
	GeminiModel  string

	HandoffResetDelay time.Duration
	BookingWindowDays int

	WhatsAppEnabled bool

	LogLevel string
}

// LoadConfig loads configuration from environment variables or defaults.
// A .env file in the working directory is applied first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		DataDir:           getEnv("DATA_DIR", "data"),
		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", "sqlite")),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		HandoffResetDelay: getEnvDuration("HANDOFF_RESET_DELAY", 1500*time.Millisecond),
		BookingWindowDays: getEnvInt("BOOKING_WINDOW_DAYS", 14),
		WhatsAppEnabled:   getEnvBool("WHATSAPP_ENABLED", false),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}
