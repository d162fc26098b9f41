package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the CLI.
type Config struct {
	// Account
	APIVersion string `envconfig:"SEVENTEENTRACK_API_VERSION" default:"v1"`
	Email      string `envconfig:"SEVENTEENTRACK_EMAIL"`
	Password   string `envconfig:"SEVENTEENTRACK_PASSWORD"`
	APIToken   string `envconfig:"SEVENTEENTRACK_API_TOKEN"`

	// Request behavior
	Timezone     string `envconfig:"SEVENTEENTRACK_TIMEZONE" default:"UTC"`
	ShowArchived bool   `envconfig:"SEVENTEENTRACK_SHOW_ARCHIVED" default:"false"`
	UseMock      bool   `envconfig:"SEVENTEENTRACK_USE_MOCK" default:"false"`

	// Telemetry
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://localhost:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"seventeentrack"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from the environment, preloading a local .env
// file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.String("seventeentrack.api_version", c.APIVersion),
		attribute.Bool("seventeentrack.use_mock", c.UseMock),
	}
}
