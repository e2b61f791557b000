package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes requested for every provisioning token: general platform
// management plus database/feature management.
const (
	ScopeCloudPlatform = "https://www.googleapis.com/auth/cloud-platform"
	ScopeFirebase      = "https://www.googleapis.com/auth/firebase"
)

// AuthError reports a failed credential decode or token exchange.
type AuthError struct {
	Reason string // "malformed-credential" or "exchange-rejected"
	Err    error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth failed (%s): %v", e.Reason, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// DecodeServiceAccount decodes a base64-encoded service-account key blob
// into its JSON form.
func DecodeServiceAccount(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, &AuthError{Reason: "malformed-credential", Err: err}
	}
	if !json.Valid(raw) {
		return nil, &AuthError{Reason: "malformed-credential", Err: fmt.Errorf("decoded credential is not a JSON document")}
	}
	return raw, nil
}

// TokenSource builds an OAuth2 token source from an encoded service-account
// blob, scoped to platform and database management.
func TokenSource(ctx context.Context, encoded string) (oauth2.TokenSource, error) {
	raw, err := DecodeServiceAccount(encoded)
	if err != nil {
		return nil, err
	}

	creds, err := google.CredentialsFromJSON(ctx, raw, ScopeCloudPlatform, ScopeFirebase)
	if err != nil {
		return nil, &AuthError{Reason: "malformed-credential", Err: err}
	}
	return creds.TokenSource, nil
}

// AcquireToken exchanges an encoded service-account blob for a short-lived
// bearer token. Stateless: the token is held in memory for one provisioning
// attempt and never cached across requests.
func AcquireToken(ctx context.Context, encoded string) (*oauth2.Token, error) {
	ts, err := TokenSource(ctx, encoded)
	if err != nil {
		return nil, err
	}

	tok, err := ts.Token()
	if err != nil {
		return nil, &AuthError{Reason: "exchange-rejected", Err: err}
	}
	return tok, nil
}
