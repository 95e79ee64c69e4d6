// Package config loads all runtime configuration from the environment.
// cmd/server calls godotenv.Load first, so a local .env file works the same
// way as real environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full server configuration.
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:5173"`

	// DatabaseURL is optional. When empty the server keeps contacts in an
	// in-process store instead of Postgres.
	DatabaseURL string `env:"DATABASE_URL"`

	// SinkTimeout bounds each individual sink call so a hung third-party
	// endpoint cannot hold delivery goroutines indefinitely.
	SinkTimeout time.Duration `env:"SINK_TIMEOUT" envDefault:"10s"`

	Sheets   SheetsConfig
	SendGrid SendGridConfig
	HubSpot  HubSpotConfig
}

// SheetsConfig holds Google Sheets service-account credentials.
// PrivateKey may be either the bare PEM key or the full service-account
// JSON file contents; pkg/sheets handles both.
type SheetsConfig struct {
	PrivateKey  string `env:"GOOGLE_SHEETS_PRIVATE_KEY"`
	ClientEmail string `env:"GOOGLE_SHEETS_CLIENT_EMAIL"`
	SheetID     string `env:"GOOGLE_SHEETS_SHEET_ID"`
}

// SendGridConfig holds the transactional email credentials and the fixed
// recipient for contact notifications.
type SendGridConfig struct {
	APIKey    string `env:"SENDGRID_API_KEY"`
	FromEmail string `env:"SENDGRID_FROM_EMAIL" envDefault:"noreply@grabbix.com"`
	ToEmail   string `env:"NOTIFICATION_EMAIL"`
}

// HubSpotConfig identifies the HubSpot form that receives lead submissions.
// AccessToken is optional; the forms API accepts anonymous submissions.
type HubSpotConfig struct {
	PortalID    string `env:"HUBSPOT_PORTAL_ID"`
	FormID      string `env:"HUBSPOT_FORM_ID_CONTACT"`
	AccessToken string `env:"HUBSPOT_ACCESS_TOKEN"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
