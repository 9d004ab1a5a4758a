package config

import (
	"fmt"
	"time"
)

// ClientConfig configures the terminal client.
type ClientConfig struct {
	ServerURL      string        `yaml:"server_url"      env:"VOCAB_SERVER_URL"      env-default:"http://localhost:8080"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"VOCAB_REQUEST_TIMEOUT" env-default:"30s"`
	// SessionFile defaults to <user config dir>/viovio/session.json.
	SessionFile    string        `yaml:"session_file"    env:"VOCAB_SESSION_FILE"`
	LogFile        string        `yaml:"log_file"        env:"VOCAB_LOG_FILE"`
	LogLevel       string        `yaml:"log_level"       env:"VOCAB_LOG_LEVEL"       env-default:"info"`
}

// LoadClient reads the client configuration from ENV + defaults, optionally
// layered over the YAML file named by VOCAB_CONFIG_PATH.
func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := readInto(&cfg, "VOCAB_CONFIG_PATH", ""); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the client configuration.
func (c *ClientConfig) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %s)", c.RequestTimeout)
	}
	return nil
}
