package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the CLI configuration loaded from configs/.env and environment variables.
type Config struct {
	AppName               string        `mapstructure:"app_name"`
	Environment           string        `mapstructure:"showrunner_env"`
	Token                 string        `mapstructure:"showrunner_token"`
	BaseURL               string        `mapstructure:"showrunner_base_url"`
	LogLevel              string        `mapstructure:"log_level"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "showrunner")
	v.SetDefault("showrunner_env", "prod")
	v.SetDefault("showrunner_token", "")
	v.SetDefault("showrunner_base_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("request_timeout_seconds", 0) // 0 leaves calls bounded by context only

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Environment = strings.TrimSpace(cfg.Environment)
	if cfg.Environment == "" {
		return nil, fmt.Errorf("invalid showrunner_env (must not be empty)")
	}
	if cfg.RequestTimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be zero or positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	return &cfg, nil
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.Token != "" {
		c.Token = "***"
	}
	return c
}
