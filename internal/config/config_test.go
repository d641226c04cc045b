package config

import (
	"testing"
	"time"
)

// validConfig returns a Config that passes Validate.
func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			RateLimitRPS:   20,
			RateLimitBurst: 40,
		},
		Database: DatabaseConfig{
			DSN:      "postgres://localhost/englishpal",
			MaxConns: 25,
			MinConns: 5,
		},
		Auth: AuthConfig{
			JWTSecret:        "0123456789abcdef0123456789abcdef",
			JWTIssuer:        "englishpal",
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  720 * time.Hour,
			PasswordHashCost: 10,
		},
		Dictionary: DictionaryConfig{
			BaseURL: "https://api.dictionaryapi.dev/api/v2/entries/en",
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() on valid config: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 0 }},
		{"zero rate limit", func(c *Config) { c.Server.RateLimitRPS = 0 }},
		{"max conns below min", func(c *Config) { c.Database.MaxConns = 1 }},
		{"short jwt secret", func(c *Config) { c.Auth.JWTSecret = "short" }},
		{"refresh ttl below access ttl", func(c *Config) { c.Auth.RefreshTokenTTL = time.Minute }},
		{"bcrypt cost out of range", func(c *Config) { c.Auth.PasswordHashCost = 99 }},
		{"bad dictionary url", func(c *Config) { c.Dictionary.BaseURL = "ftp://nope" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost/englishpal_test")
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() from env: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("default log.format = %q, want json", cfg.Log.Format)
	}
	if !cfg.Database.MigrateOnStart {
		t.Error("database.migrate_on_start should default to true")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Error("Load() with missing explicit CONFIG_PATH should fail")
	}
}
