// Package api holds the request and response types of the fireliftd HTTP
// API, shared between the server handlers and the client.
package api

import (
	"github.com/firelift/firelift/internal/appconfig"
	"github.com/firelift/firelift/internal/provisioning"
)

// SetupRequest is the body of POST /api/setupFirebase.
type SetupRequest struct {
	UserID      string `json:"userId"`
	ProjectName string `json:"projectName,omitempty"`
}

// SetupResponse is the success body: the fresh project and its client
// configuration.
type SetupResponse struct {
	Success   bool                   `json:"success"`
	ProjectID string                 `json:"projectId"`
	Config    appconfig.Config       `json:"config"`
	Warnings  []provisioning.Warning `json:"warnings,omitempty"`
}

// VerifyRequest is the body of POST /api/verifyFirebase.
type VerifyRequest struct {
	Config appconfig.Config `json:"config"`
}

// VerifyResponse is the success body of a config check. An invalid config
// is answered with an ErrorResponse instead.
type VerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request. Details carries the
// underlying error chain and is withheld in production.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
