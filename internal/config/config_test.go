package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("default config should validate, got %d errors: %v", len(errs), ValidationErrors(errs))
	}
}

func TestLoadWithDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:5000" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.TUI.PageSize != 10 {
		t.Errorf("TUI.PageSize = %d, want 10", cfg.TUI.PageSize)
	}
	if cfg.TUI.DetailPageSize != 5 {
		t.Errorf("TUI.DetailPageSize = %d, want 5", cfg.TUI.DetailPageSize)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()
	viper.Set("api.base_url", "https://mail.example.com")
	viper.Set("tui.page_size", 25)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "https://mail.example.com" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.TUI.PageSize != 25 {
		t.Errorf("TUI.PageSize = %d, want 25", cfg.TUI.PageSize)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()
	viper.Set("api.base_url", "not a url")
	viper.Set("tui.page_size", 0)
	viper.Set("logging.level", "verbose")

	if _, err := Load(); err == nil {
		t.Fatal("Load should reject invalid config")
	}
}

func TestValidateAPI(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"relative base url", func(c *Config) { c.API.BaseURL = "/api" }, true},
		{"zero timeout", func(c *Config) { c.API.TimeoutSeconds = 0 }, true},
		{"negative retries", func(c *Config) { c.API.RetryCount = -1 }, true},
		{"bad theme", func(c *Config) { c.TUI.Theme = "solarized" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if tt.wantErr && len(errs) == 0 {
				t.Error("expected validation errors, got none")
			}
			if !tt.wantErr && len(errs) > 0 {
				t.Errorf("unexpected validation errors: %v", ValidationErrors(errs))
			}
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "api.base_url", Value: "", Message: "must not be empty"},
		{Field: "tui.page_size", Value: 0, Message: "must be at least 1"},
	}
	msg := errs.Error()
	if msg == "" {
		t.Fatal("message should not be empty")
	}
	for _, want := range []string{"api.base_url", "tui.page_size", "2 validation errors"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %q", msg, want)
		}
	}
}

func TestResolveTokenFile(t *testing.T) {
	var s SessionConfig
	if got := s.ResolveTokenFile(); got != filepath.Join(ConfigDir(), "token") {
		t.Errorf("default token file = %q", got)
	}

	s.TokenFile = "alt-token"
	if got := s.ResolveTokenFile(); got != filepath.Join(ConfigDir(), "alt-token") {
		t.Errorf("relative token file = %q", got)
	}

	abs := filepath.Join(t.TempDir(), "token")
	s.TokenFile = abs
	if got := s.ResolveTokenFile(); got != abs {
		t.Errorf("absolute token file = %q, want %q", got, abs)
	}
}
