// Package config loads storefront settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting of the storefront service.
type Config struct {
	// Port serves the gRPC health service.
	Port string `env:"PORT" envDefault:"50202"`
	// HTTPPort serves the storefront API.
	HTTPPort       string        `env:"HTTP_PORT" envDefault:"8080"`
	CatalogPath    string        `env:"CATALOG_PATH"`
	WhatsAppNumber string        `env:"WHATSAPP_NUMBER" envDefault:"543815787398"`
	Greeting       string        `env:"GREETING" envDefault:"Hola Mi Felisa! Quiero pedir:"`
	Locale         string        `env:"LOCALE" envDefault:"es-AR"`
	CurrencySymbol string        `env:"CURRENCY_SYMBOL" envDefault:"$"`
	OpenAt         string        `env:"OPEN_AT" envDefault:"08:30"`
	CloseAt        string        `env:"CLOSE_AT" envDefault:"23:00"`
	StatusInterval time.Duration `env:"STATUS_INTERVAL" envDefault:"60s"`
	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"2h"`
}

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "STOREFRONT_"

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses a Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
