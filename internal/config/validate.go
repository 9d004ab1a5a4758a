package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.PasswordMinLength < 1 {
		return fmt.Errorf("auth.password_min_length must be > 0 (got %d)", c.Auth.PasswordMinLength)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	switch c.Database.TraceLevel {
	case "trace", "debug", "info", "warn", "error", "none":
	default:
		return fmt.Errorf("database.trace_level must be one of trace, debug, info, warn, error, none (got %q)", c.Database.TraceLevel)
	}

	if c.Lookup.Timeout <= 0 {
		return fmt.Errorf("lookup.timeout must be > 0 (got %s)", c.Lookup.Timeout)
	}
	if c.History.PersistTimeout <= 0 {
		return fmt.Errorf("history.persist_timeout must be > 0 (got %s)", c.History.PersistTimeout)
	}

	if _, err := cron.ParseStandard(c.Scheduler.TokenCleanupSpec); err != nil {
		return fmt.Errorf("scheduler.token_cleanup_spec: %w", err)
	}

	return nil
}

func (c *LLMConfig) validate() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if !c.IsProviderSupported() {
		return fmt.Errorf("provider %q is not one of %s", c.Provider, strings.Join(SupportedLLMProviders(), ", "))
	}
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %q", c.Provider)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", c.MaxTokens)
	}
	return nil
}
