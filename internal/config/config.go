package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App   AppConfig
	Log   LogConfig
	Redis RedisConfig
}

type AppConfig struct {
	Name        string `env:"APP_NAME" envDefault:"Megaferia API"`
	Environment string `env:"APP_ENV" envDefault:"development"` // development, staging, production
	Port        string `env:"APP_PORT" envDefault:"8080"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// RedisConfig enables the change feed. Disabled by default.
type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED" envDefault:"false"`
	Host     string `env:"REDIS_HOST" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Channel  string `env:"REDIS_CHANNEL" envDefault:"megaferia:changes"`
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	switch c.App.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("APP_ENV must be development, staging or production, got %q", c.App.Environment)
	}

	if c.App.Port == "" {
		return fmt.Errorf("APP_PORT must be set")
	}

	if c.Redis.Enabled {
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST must be set when REDIS_ENABLED is true")
		}
		if c.Redis.Channel == "" {
			return fmt.Errorf("REDIS_CHANNEL must be set when REDIS_ENABLED is true")
		}
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
