package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultServerConfigPath = "./config.yaml"

// Load reads the server configuration. ENV overrides the YAML file named by
// CONFIG_PATH, which overrides env-default tags and defaults(). Without CONFIG_PATH a
// missing ./config.yaml is not an error.
func Load() (*Config, error) {
	cfg := defaults()
	if err := readInto(&cfg, "CONFIG_PATH", defaultServerConfigPath); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// readInto fills cfg from the YAML file named by pathEnv (or fallback when
// the variable is unset) and then from the environment. Only an explicitly
// named file has to exist.
func readInto(cfg any, pathEnv, fallback string) error {
	path, explicit := os.LookupEnv(pathEnv)
	if !explicit || path == "" {
		path, explicit = fallback, false
	}

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(path, cfg); err != nil {
				return fmt.Errorf("config: read %s: %w", path, err)
			}
			return nil
		case explicit:
			return fmt.Errorf("config: file %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	return nil
}
