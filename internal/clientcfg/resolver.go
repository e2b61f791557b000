package clientcfg

import (
	"os"

	"github.com/firelift/firelift/internal/appconfig"
)

// Source is the precedence tier a resolved configuration came from.
type Source string

const (
	// SourceEnvironment always wins over the persisted store and is never
	// merged with it.
	SourceEnvironment Source = "environment"

	// SourceStore is the previously persisted client configuration.
	SourceStore Source = "store"

	// SourceNone means no valid configuration exists anywhere and an entry
	// or provisioning flow must run.
	SourceNone Source = "none"
)

// Environment variable names of the environment configuration tier.
const (
	EnvAPIKey            = "FIRELIFT_FB_API_KEY"
	EnvAuthDomain        = "FIRELIFT_FB_AUTH_DOMAIN"
	EnvProjectID         = "FIRELIFT_FB_PROJECT_ID"
	EnvStorageBucket     = "FIRELIFT_FB_STORAGE_BUCKET"
	EnvMessagingSenderID = "FIRELIFT_FB_MESSAGING_SENDER_ID"
	EnvAppID             = "FIRELIFT_FB_APP_ID"
	EnvMeasurementID     = "FIRELIFT_FB_MEASUREMENT_ID"
)

// FromEnv reads the environment configuration tier.
func FromEnv() appconfig.Config {
	return appconfig.Config{
		APIKey:            os.Getenv(EnvAPIKey),
		AuthDomain:        os.Getenv(EnvAuthDomain),
		ProjectID:         os.Getenv(EnvProjectID),
		StorageBucket:     os.Getenv(EnvStorageBucket),
		MessagingSenderID: os.Getenv(EnvMessagingSenderID),
		AppID:             os.Getenv(EnvAppID),
		MeasurementID:     os.Getenv(EnvMeasurementID),
	}
}

// Resolve picks the authoritative configuration. Pure in its two inputs:
// no ambient lookup happens here, and it must be re-evaluated on every
// start rather than cached.
//
// Environment wins whenever its apiKey is present, regardless of what is
// stored. The store tier is valid only with apiKey, projectId and
// authDomain all present. Otherwise there is no configuration.
func Resolve(env appconfig.Config, stored *appconfig.Config) (appconfig.Config, Source) {
	if env.APIKey != "" {
		return env, SourceEnvironment
	}
	if stored != nil && stored.APIKey != "" && stored.ProjectID != "" && stored.AuthDomain != "" {
		return *stored, SourceStore
	}
	return appconfig.Config{}, SourceNone
}
