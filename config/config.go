package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config holds all runtime configuration, decoded from the environment.
type Config struct {
	Port string `env:"PORT,default=8080"`

	Database DatabaseConfig

	// Session tokens
	JWTSecret       string `env:"JWT_SECRET,default=supersecretkey123"`
	SessionTTLHours int    `env:"SESSION_TTL_HOURS,default=24"`

	// Outbound geocoding lookup
	GeocoderBaseURL   string `env:"GEOCODER_BASE_URL,default=https://nominatim.openstreetmap.org/search"`
	GeocoderUserAgent string `env:"GEOCODER_USER_AGENT,default=smart-travel-app"`

	NewRelicLicenseKey string `env:"NEW_RELIC_LICENSE_KEY"`
}

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	Host     string `env:"DB_HOST,default=localhost"`
	Port     string `env:"DB_PORT,default=5432"`
	User     string `env:"DB_USER,default=postgres"`
	Password string `env:"DB_PASSWORD,default=postgres"`
	Name     string `env:"DB_NAME,default=smarttravel"`
}

// ConnString builds the lib/pq connection string.
func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Load decodes configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %v", err)
	}
	return &cfg, nil
}
