package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads an optional YAML configuration file, layers environment
// variables on top and validates the result. Environment always wins over
// file values. An empty path means env-only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		// #nosec G304
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		var rawConfig map[string]interface{}
		if err := yaml.Unmarshal(data, &rawConfig); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
		if err := mapstructure.Decode(rawConfig, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	}

	overlayEnv(&cfg)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func overlayEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.ServiceAccount, EnvServiceAccount)
	set(&cfg.ParentOrganization, EnvParentOrg)
	set(&cfg.ParentFolder, EnvParentFolder)
	set(&cfg.DatabaseLocation, EnvDBLocation)
	set(&cfg.AllowedOrigin, EnvAllowedOrigin)
	set(&cfg.ListenAddr, EnvListenAddr)
	set(&cfg.Environment, EnvEnvironment)
	set(&cfg.LogLevel, EnvLogLevel)
}
