package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port int `env:"TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("STOREFRONT_TEST_PORT", "456")
	t.Setenv("TEST_PORT", "789")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 456 {
		t.Fatalf("expected prefixed port 456, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("STOREFRONT_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "50202" || cfg.HTTPPort != "8080" {
		t.Fatalf("unexpected ports %q/%q", cfg.Port, cfg.HTTPPort)
	}
	if cfg.WhatsAppNumber != "543815787398" {
		t.Fatalf("unexpected number %q", cfg.WhatsAppNumber)
	}
	if cfg.Locale != "es-AR" || cfg.CurrencySymbol != "$" {
		t.Fatalf("unexpected money settings %q/%q", cfg.Locale, cfg.CurrencySymbol)
	}
	if cfg.StatusInterval != time.Minute || cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("unexpected durations %v/%v", cfg.StatusInterval, cfg.SessionTTL)
	}
	if cfg.CatalogPath != "" {
		t.Fatalf("expected embedded catalog by default, got %q", cfg.CatalogPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_OPEN_AT", "09:00")
	t.Setenv("STOREFRONT_STATUS_INTERVAL", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OpenAt != "09:00" || cfg.StatusInterval != 5*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
