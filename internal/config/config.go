package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete mailadm configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Session SessionConfig `mapstructure:"session"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig controls how the panel talks to the account service
type APIConfig struct {
	// BaseURL is the root of the account service API (e.g. "http://localhost:5000")
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds is the per-request timeout (default: 10)
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	// RetryCount is how many times retryable requests are reattempted (default: 2)
	RetryCount int `mapstructure:"retry_count"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// PageSize is the number of accounts shown per roster page (default: 10)
	PageSize int `mapstructure:"page_size"`
	// DetailPageSize is the number of mailbox entries shown per detail page (default: 5)
	DetailPageSize int `mapstructure:"detail_page_size"`
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme"`
	// ShowTimestamps shows event timestamps in the status line (default: false)
	ShowTimestamps bool `mapstructure:"show_timestamps"`
}

// SessionConfig controls login session persistence
type SessionConfig struct {
	// TokenFile is where the bearer token is stored between runs.
	// If empty, defaults to "token" inside the config directory.
	TokenFile string `mapstructure:"token_file"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:5000",
			TimeoutSeconds: 10,
			RetryCount:     2,
		},
		TUI: TUIConfig{
			PageSize:       10,
			DetailPageSize: 5,
			Theme:          "default",
			ShowTimestamps: false,
		},
		Session: SessionConfig{
			TokenFile: "", // Empty means <config dir>/token
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
	}
}

// Timeout returns the request timeout as a time.Duration
func (c *APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ResolveTokenFile returns the resolved token file path.
// If TokenFile is empty, it returns the default path inside the config
// directory. A relative path is resolved relative to the config directory.
func (s *SessionConfig) ResolveTokenFile() string {
	if s.TokenFile == "" {
		return filepath.Join(ConfigDir(), "token")
	}
	if !filepath.IsAbs(s.TokenFile) {
		return filepath.Join(ConfigDir(), s.TokenFile)
	}
	return s.TokenFile
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// API defaults
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout_seconds", defaults.API.TimeoutSeconds)
	viper.SetDefault("api.retry_count", defaults.API.RetryCount)

	// TUI defaults
	viper.SetDefault("tui.page_size", defaults.TUI.PageSize)
	viper.SetDefault("tui.detail_page_size", defaults.TUI.DetailPageSize)
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.show_timestamps", defaults.TUI.ShowTimestamps)

	// Session defaults
	viper.SetDefault("session.token_file", defaults.Session.TokenFile)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mailadm")
	}
	// Fall back to ~/.config/mailadm
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mailadm"
	}
	return filepath.Join(home, ".config", "mailadm")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
