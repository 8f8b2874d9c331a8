package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected postgres driver, got %s", cfg.Database.Driver)
	}
	if cfg.Budget.DefaultDailyAmount != 33.33 {
		t.Errorf("expected 33.33, got %v", cfg.Budget.DefaultDailyAmount)
	}
	if cfg.Budget.DefaultPeriod != "monthly" {
		t.Errorf("expected monthly, got %s", cfg.Budget.DefaultPeriod)
	}
	if cfg.RateLimit.MaxAttempts != 5 || cfg.RateLimit.Window != time.Minute {
		t.Errorf("unexpected rate limit %+v", cfg.RateLimit)
	}
	if cfg.Redis.URL != "" {
		t.Errorf("expected redis disabled by default, got %s", cfg.Redis.URL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("BUDGET_DEFAULT_DAILY_AMOUNT", "12.5")
	t.Setenv("AUTH_RATE_LIMIT_WINDOW", "30s")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://app.example.com ,")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.Budget.DefaultDailyAmount != 12.5 {
		t.Errorf("expected 12.5, got %v", cfg.Budget.DefaultDailyAmount)
	}
	if cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("expected 30s, got %v", cfg.RateLimit.Window)
	}
	if cfg.Database.AutoMigrate {
		t.Error("expected auto-migrate to be disabled")
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://app.example.com" {
		t.Errorf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(*Config) bool
	}{
		{"int", "SERVER_PORT", "eighty", func(c *Config) bool { return c.Server.Port == 8080 }},
		{"float", "BUDGET_DEFAULT_DAILY_AMOUNT", "lots", func(c *Config) bool { return c.Budget.DefaultDailyAmount == 33.33 }},
		{"duration", "SERVER_READ_TIMEOUT", "soon", func(c *Config) bool { return c.Server.ReadTimeout == 15*time.Second }},
		{"bool", "DB_AUTO_MIGRATE", "maybe", func(c *Config) bool { return c.Database.AutoMigrate }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if !tt.check(Load()) {
				t.Errorf("expected default for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestBudgetLocation(t *testing.T) {
	if loc := (BudgetConfig{Timezone: "Not/AZone"}).Location(); loc != time.UTC {
		t.Errorf("expected UTC fallback, got %v", loc)
	}
	if loc := (BudgetConfig{Timezone: "UTC"}).Location(); loc.String() != "UTC" {
		t.Errorf("expected UTC, got %v", loc)
	}
}
