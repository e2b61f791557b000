package provisioning

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when no service credential is configured.
// It is checked before any network call is made.
var ErrNotConfigured = errors.New("not-configured: no service credential available")

// CreateError reports a rejected project-create call, including identifier
// collisions. Collisions are not retried with a fresh identifier; the
// caller re-invokes the whole pipeline to get one.
type CreateError struct {
	Reason string
	Err    error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("project creation failed: %s", e.Reason)
}

func (e *CreateError) Unwrap() error { return e.Err }

// FeatureError reports a failed managed-platform activation.
type FeatureError struct {
	Err error
}

func (e *FeatureError) Error() string {
	return fmt.Sprintf("platform activation failed: %v", e.Err)
}

func (e *FeatureError) Unwrap() error { return e.Err }

// RegisterError reports a failed app registration.
type RegisterError struct {
	Err error
}

func (e *RegisterError) Error() string {
	return fmt.Sprintf("app registration failed: %v", e.Err)
}

func (e *RegisterError) Unwrap() error { return e.Err }

// ConfigFetchError reports a failed or schema-invalid app config fetch.
// The schema case fires even when the underlying HTTP call succeeded.
type ConfigFetchError struct {
	Reason string
	Err    error
}

func (e *ConfigFetchError) Error() string {
	return fmt.Sprintf("app config fetch failed: %s", e.Reason)
}

func (e *ConfigFetchError) Unwrap() error { return e.Err }
