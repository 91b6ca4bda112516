// Package config loads the server configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig is the top-level YAML configuration.
type ServerConfig struct {
	Server struct {
		Addr string `yaml:"addr"`
		// MaxBodyBytes caps request bodies; requests above it get 413.
		MaxBodyBytes int64 `yaml:"max_body_bytes"`
		// ShutdownTimeoutSeconds bounds graceful shutdown.
		ShutdownTimeoutSeconds int `yaml:"shutdown_timeout_seconds"`
	} `yaml:"server"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Feed struct {
		// Timezone pins the feed's date-bucket windows (today, this_week,
		// this_month) to one location regardless of server locale.
		Timezone string `yaml:"timezone"`
	} `yaml:"feed"`

	RateLimit struct {
		// Limit requests per WindowSeconds per client IP on mutating
		// endpoints. Limit 0 disables rate limiting.
		Limit         int `yaml:"limit"`
		WindowSeconds int `yaml:"window_seconds"`
	} `yaml:"rate_limit"`

	SMTP struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		// PasswordEnv names the environment variable holding the SMTP
		// password; the password itself never lives in the file.
		PasswordEnv    string `yaml:"password_env"`
		From           string `yaml:"from"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"smtp"`
}

// Default returns the configuration used when no file is given.
func Default() *ServerConfig {
	var c ServerConfig
	c.applyDefaults()
	return &c
}

// Load reads and validates the YAML file at path. An empty path yields the
// defaults.
func Load(path string) (*ServerConfig, error) {
	if path == "" {
		return Default(), nil
	}

	// #nosec G304 -- path comes from a CLI flag, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var c ServerConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}

func (c *ServerConfig) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}
	if c.Server.ShutdownTimeoutSeconds == 0 {
		c.Server.ShutdownTimeoutSeconds = 15
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	}
	if c.Feed.Timezone == "" {
		c.Feed.Timezone = "UTC"
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
	if c.SMTP.TimeoutSeconds == 0 {
		c.SMTP.TimeoutSeconds = 10
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
}

func (c *ServerConfig) validate() error {
	if c.SMTP.Enabled {
		if c.SMTP.Host == "" {
			return fmt.Errorf("smtp host is required when smtp is enabled")
		}
		if c.SMTP.From == "" {
			return fmt.Errorf("smtp from address is required when smtp is enabled")
		}
	}
	if c.RateLimit.Limit < 0 {
		return fmt.Errorf("rate_limit limit cannot be negative")
	}
	return nil
}

// SMTPPassword resolves the SMTP password from the configured environment
// variable, or "" when unset.
func (c *ServerConfig) SMTPPassword() string {
	if c.SMTP.PasswordEnv == "" {
		return ""
	}
	return os.Getenv(c.SMTP.PasswordEnv)
}
