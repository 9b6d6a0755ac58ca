// Package server is the HTTP presentation layer over the reasoning core:
// it accepts problem submissions, records solved problems in a history
// store, and serves downloadable text reports.
package server

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mindmate-ai/mindmate/mindmate"
)

// Config represents the daemon configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Provider ProviderConfig `yaml:"provider"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ProviderConfig contains completion backend settings.
type ProviderConfig struct {
	Backend     string        `yaml:"backend"`
	APIKey      string        `yaml:"api_key"`
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	Detail      string        `yaml:"detail"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxAttempts int           `yaml:"max_attempts"`
	RetryDelay  time.Duration `yaml:"retry_delay"`
}

// DatabaseConfig contains optional history persistence settings. With an
// empty URL the daemon keeps history in memory only.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// Load reads and parses the configuration file. ${VAR} references in the
// file are expanded from the environment before parsing, so API keys stay
// out of the file itself.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("server: read config file: %w", err)
	}

	expanded := os.Expand(string(data), os.Getenv)

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("server: parse config: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server: invalid port: %d", c.Server.Port)
	}
	if c.Provider.APIKey == "" {
		return fmt.Errorf("server: provider api_key must be set")
	}
	if _, err := parseDetail(c.Provider.Detail); err != nil {
		return err
	}
	switch mindmate.Backend(c.Provider.Backend) {
	case mindmate.BackendAnthropic, mindmate.BackendOpenAI, mindmate.BackendGoogle:
		return nil
	default:
		return fmt.Errorf("server: unknown backend %q", c.Provider.Backend)
	}
}

// setDefaults sets default values for optional fields.
func (c *Config) setDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Provider.Backend == "" {
		c.Provider.Backend = string(mindmate.BackendAnthropic)
	}
	if c.Provider.Detail == "" {
		c.Provider.Detail = "medium"
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = mindmate.DefaultTimeout
	}
	if c.Provider.MaxAttempts == 0 {
		c.Provider.MaxAttempts = mindmate.DefaultMaxAttempts
	}
	if c.Provider.RetryDelay == 0 {
		c.Provider.RetryDelay = mindmate.DefaultRetryDelay
	}
}

// ClientConfig converts the daemon configuration into a core client config.
func (c *Config) ClientConfig() mindmate.Config {
	cfg := mindmate.Config{
		Backend:      mindmate.Backend(c.Provider.Backend),
		DefaultModel: c.Provider.Model,
		Timeout:      c.Provider.Timeout,
		MaxAttempts:  c.Provider.MaxAttempts,
		RetryDelay:   c.Provider.RetryDelay,
	}
	switch cfg.Backend {
	case mindmate.BackendOpenAI:
		cfg.OpenAIAPIKey = c.Provider.APIKey
		cfg.OpenAIBaseURL = c.Provider.BaseURL
	case mindmate.BackendGoogle:
		cfg.GoogleAPIKey = c.Provider.APIKey
		cfg.GoogleBaseURL = c.Provider.BaseURL
	default:
		cfg.AnthropicAPIKey = c.Provider.APIKey
		if c.Provider.BaseURL != "" {
			cfg.AnthropicBaseURL = c.Provider.BaseURL
		}
	}
	return cfg
}

// DetailLevel returns the configured default detail level.
func (c *Config) DetailLevel() mindmate.DetailLevel {
	d, _ := parseDetail(c.Provider.Detail)
	return d
}

func parseDetail(s string) (mindmate.DetailLevel, error) {
	switch s {
	case "", "medium":
		return mindmate.DetailMedium, nil
	case "short":
		return mindmate.DetailShort, nil
	case "detailed":
		return mindmate.DetailDetailed, nil
	default:
		return 0, fmt.Errorf("server: invalid detail %q: must be short, medium, or detailed", s)
	}
}
