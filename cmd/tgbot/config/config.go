// Package config loads the tgbot CLI configuration from the environment
// and an optional YAML or .env file.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds CLI configuration. Environment variables override file values.
type Config struct {
	APIKey         string        `yaml:"api_key" env:"TELEGRAM_API_KEY" env-required:"true"`
	BotUsername    string        `yaml:"bot_username" env:"TELEGRAM_BOT_USERNAME"`
	BaseURL        string        `yaml:"base_url" env:"TELEGRAM_API_BASE_URL" env-default:"https://api.telegram.org"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"TELEGRAM_REQUEST_TIMEOUT" env-default:"30s"`
	LogLevel       string        `yaml:"log_level" env:"TELEGRAM_LOG_LEVEL" env-default:"warn"`
}

// Load reads the configuration. With an empty path only the environment is used.
func Load(path string) (*Config, error) {
	var cfg Config
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values cleanenv cannot.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("TELEGRAM_API_KEY required")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("invalid TELEGRAM_REQUEST_TIMEOUT: %s", c.RequestTimeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid TELEGRAM_LOG_LEVEL: %w", err)
	}
	return level, nil
}

// Usage returns a description of the environment variables.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
