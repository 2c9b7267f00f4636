package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	PostgresURI string `envconfig:"POSTGRES_URI"`

	// Exactly one of the two must be set. There is deliberately no built-in
	// fallback value: an unconfigured admin secret is a startup error, not a
	// default credential.
	AdminSecret     string `envconfig:"ADMIN_SECRET"`
	AdminSecretHash string `envconfig:"ADMIN_SECRET_HASH"`

	// Per-file cap for career application uploads, in bytes.
	MaxUploadBytes int64 `envconfig:"MAX_UPLOAD_BYTES" default:"10485760"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.PostgresURI == "" {
		return nil, errors.New("POSTGRES_URI must be set")
	}
	if cfg.AdminSecret == "" && cfg.AdminSecretHash == "" {
		return nil, errors.New("either ADMIN_SECRET or ADMIN_SECRET_HASH must be set")
	}
	if cfg.AdminSecret != "" && cfg.AdminSecretHash != "" {
		return nil, errors.New("ADMIN_SECRET and ADMIN_SECRET_HASH are mutually exclusive")
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	return &cfg, nil
}
