// Package config holds the server configuration: an optional YAML file with
// environment variables layered on top, environment winning.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variable names consumed by fireliftd.
const (
	EnvServiceAccount = "FIRELIFT_SERVICE_ACCOUNT"
	EnvParentOrg      = "FIRELIFT_PARENT_ORG"
	EnvParentFolder   = "FIRELIFT_PARENT_FOLDER"
	EnvDBLocation     = "FIRELIFT_DB_LOCATION"
	EnvAllowedOrigin  = "FIRELIFT_ALLOWED_ORIGIN"
	EnvListenAddr     = "FIRELIFT_ADDR"
	EnvEnvironment    = "FIRELIFT_ENV"
	EnvLogLevel       = "FIRELIFT_LOG_LEVEL"
)

const (
	// DefaultDatabaseLocation is used when no region is configured.
	DefaultDatabaseLocation = "us-central"

	// DefaultAllowedOrigin permits the local development origin only.
	DefaultAllowedOrigin = "http://localhost:5173"

	DefaultListenAddr = ":8080"
)

// Config is the fireliftd server configuration.
type Config struct {
	// ServiceAccount is the base64-encoded service-identity credential.
	// When empty, every provisioning call fails fast with a
	// not-configured error before any network I/O.
	ServiceAccount string `mapstructure:"serviceAccount"`

	// ParentOrganization and ParentFolder optionally place created
	// projects. Folder, the narrower scope, wins when both are set.
	ParentOrganization string `mapstructure:"parentOrganization"`
	ParentFolder       string `mapstructure:"parentFolder"`

	// DatabaseLocation is the region for the default document database.
	DatabaseLocation string `mapstructure:"databaseLocation"`

	// AllowedOrigin is the sole origin permitted by CORS.
	AllowedOrigin string `mapstructure:"allowedOrigin"`

	ListenAddr  string `mapstructure:"listenAddr"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"logLevel"`
}

// Production reports whether extended diagnostic detail should be withheld
// from HTTP error bodies.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Environment, "production")
}

// FromEnv builds a Config from environment variables and defaults.
func FromEnv() *Config {
	cfg := &Config{
		ServiceAccount:     os.Getenv(EnvServiceAccount),
		ParentOrganization: os.Getenv(EnvParentOrg),
		ParentFolder:       os.Getenv(EnvParentFolder),
		DatabaseLocation:   os.Getenv(EnvDBLocation),
		AllowedOrigin:      os.Getenv(EnvAllowedOrigin),
		ListenAddr:         os.Getenv(EnvListenAddr),
		Environment:        os.Getenv(EnvEnvironment),
		LogLevel:           os.Getenv(EnvLogLevel),
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.DatabaseLocation == "" {
		c.DatabaseLocation = DefaultDatabaseLocation
	}
	if c.AllowedOrigin == "" {
		c.AllowedOrigin = DefaultAllowedOrigin
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks the configuration for values the platform would reject.
func (c *Config) Validate() error {
	if c.ParentOrganization != "" && !isNumeric(c.ParentOrganization) {
		return fmt.Errorf("parent organization must be a numeric id, got %q", c.ParentOrganization)
	}
	if c.ParentFolder != "" && !isNumeric(c.ParentFolder) {
		return fmt.Errorf("parent folder must be a numeric id, got %q", c.ParentFolder)
	}
	switch strings.ToLower(c.Environment) {
	case "development", "production":
	default:
		return fmt.Errorf("unknown environment %q (want development or production)", c.Environment)
	}
	return nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
