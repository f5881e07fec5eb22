package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"
)

// Config is the service configuration, read from the environment (and from
// .env through godotenv in cmd/api).
type Config struct {
	Port           int    `env:"PORT" envDefault:"8080"`
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"memory"`

	AWS    AWSConfig
	Tables TablesConfig

	DefaultPenaltyPolicy string `env:"DEFAULT_PENALTY_POLICY" envDefault:"flat"`
	ReminderHorizonDays  int    `env:"REMINDER_HORIZON_DAYS" envDefault:"7"`

	Gateway GatewayConfig
}

// AWSConfig keeps the local-friendly defaults used against DynamoDB Local.
type AWSConfig struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoEndpoint  string `env:"DYNAMODB_ENDPOINT"`
}

type TablesConfig struct {
	Products      string `env:"PRODUCTS_TABLE" envDefault:"products"`
	Policyholders string `env:"POLICYHOLDERS_TABLE" envDefault:"policyholders"`
	Payments      string `env:"PAYMENTS_TABLE" envDefault:"payments"`
}

type GatewayConfig struct {
	Enabled     bool   `env:"PAYMENT_GATEWAY_ENABLED" envDefault:"false"`
	AccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock        bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(cfg.StorageBackend))
	cfg.DefaultPenaltyPolicy = strings.ToLower(strings.TrimSpace(cfg.DefaultPenaltyPolicy))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageBackend {
	case StorageMemory, StorageDynamoDB:
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND %q", c.StorageBackend)
	}
	switch c.DefaultPenaltyPolicy {
	case "flat", "percent":
	default:
		return fmt.Errorf("invalid DEFAULT_PENALTY_POLICY %q", c.DefaultPenaltyPolicy)
	}
	if c.ReminderHorizonDays < 0 {
		return fmt.Errorf("invalid REMINDER_HORIZON_DAYS %d", c.ReminderHorizonDays)
	}
	if c.Port <= 0 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}
