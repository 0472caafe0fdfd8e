// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full process configuration for the intake service.
type Config struct {
	// Backend endpoints.
	SubmitEndpoint string        `env:"INTAKE_SUBMIT_ENDPOINT" envDefault:"http://localhost:8080/api/transactions"`
	EmailEndpoint  string        `env:"INTAKE_EMAIL_ENDPOINT" envDefault:"http://localhost:8080/api/email-pdf"`
	HTTPTimeout    time.Duration `env:"INTAKE_HTTP_TIMEOUT" envDefault:"30s"`

	// Submission cache.
	StoreDriver string `env:"INTAKE_STORE_DRIVER" envDefault:"sqlite"`
	StorePath   string `env:"INTAKE_STORE_PATH" envDefault:"tcintake.db"`
	StoreDSN    string `env:"INTAKE_STORE_DSN"`

	// Document archive.
	BlobDriver        string `env:"INTAKE_BLOB_DRIVER" envDefault:"fs"`
	BlobRoot          string `env:"INTAKE_BLOB_ROOT" envDefault:"./intake-archive"`
	S3Bucket          string `env:"INTAKE_BLOB_S3_BUCKET"`
	S3Region          string `env:"INTAKE_BLOB_S3_REGION" envDefault:"us-east-1"`
	S3Endpoint        string `env:"INTAKE_BLOB_S3_ENDPOINT"`
	S3AccessKeyID     string `env:"INTAKE_BLOB_S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"INTAKE_BLOB_S3_SECRET_ACCESS_KEY"`
	S3PathStyle       bool   `env:"INTAKE_BLOB_S3_PATH_STYLE"`

	// Validation tuning. A zero cap disables the commission warning.
	CommissionCapPercent float64 `env:"INTAKE_COMMISSION_CAP_PERCENT" envDefault:"0"`

	// Upload retry policy.
	RetryMaxAttempts   int           `env:"INTAKE_RETRY_MAX_ATTEMPTS" envDefault:"3"`
	RetryDelay         time.Duration `env:"INTAKE_RETRY_DELAY" envDefault:"1s"`
	RetryBackoffFactor float64       `env:"INTAKE_RETRY_BACKOFF_FACTOR" envDefault:"2"`

	// Observability. An empty address disables the metrics listener.
	MetricsAddr string `env:"INTAKE_METRICS_ADDR"`
	LogLevel    string `env:"INTAKE_LOG_LEVEL" envDefault:"info"`

	// Auth gate.
	AuthRequired bool `env:"INTAKE_AUTH_REQUIRED" envDefault:"true"`
}

// Load parses configuration from the process environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c Config) Validate() error {
	if c.SubmitEndpoint == "" {
		return fmt.Errorf("submit endpoint required")
	}
	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("retry max attempts must be at least 1, got %d", c.RetryMaxAttempts)
	}
	if c.RetryBackoffFactor < 1 {
		return fmt.Errorf("retry backoff factor must be at least 1, got %g", c.RetryBackoffFactor)
	}
	if c.CommissionCapPercent < 0 || c.CommissionCapPercent > 100 {
		return fmt.Errorf("commission cap must be within [0,100], got %g", c.CommissionCapPercent)
	}
	return nil
}
