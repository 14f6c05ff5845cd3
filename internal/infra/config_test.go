package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("CURRENCY_CODE", "")
	t.Setenv("SUBSCRIBER_CACHE_TTL_SECONDS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.AppTimezone != "Europe/Moscow" {
		t.Fatalf("AppTimezone = %q, want Europe/Moscow", cfg.AppTimezone)
	}
	if cfg.CurrencyCode != "RUB" || cfg.CurrencySymbol != "₽" {
		t.Fatalf("currency = %q/%q, want RUB/₽", cfg.CurrencyCode, cfg.CurrencySymbol)
	}
	if cfg.SubscriberCacheTTL != 10*time.Minute {
		t.Fatalf("SubscriberCacheTTL = %v, want 10m", cfg.SubscriberCacheTTL)
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}
}

func TestLoadConfigParsesCORSOrigins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("CORSAllowedOrigins = %#v, want %#v", cfg.CORSAllowedOrigins, want)
	}
	for i := range want {
		if cfg.CORSAllowedOrigins[i] != want[i] {
			t.Fatalf("CORSAllowedOrigins[%d] = %q, want %q", i, cfg.CORSAllowedOrigins[i], want[i])
		}
	}
}

func TestLoadConfigCacheTTLOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("SUBSCRIBER_CACHE_TTL_SECONDS", "30")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.SubscriberCacheTTL != 30*time.Second {
		t.Fatalf("SubscriberCacheTTL = %v, want 30s", cfg.SubscriberCacheTTL)
	}
}
