package provisioning

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/firelift/firelift/internal/appconfig"
	"github.com/firelift/firelift/internal/config"
	"github.com/firelift/firelift/internal/platform/google"
)

// Stage identifies a step of the provisioning pipeline.
type Stage string

const (
	StageAuth     Stage = "auth"
	StageProject  Stage = "project"
	StageApp      Stage = "app"
	StageDatabase Stage = "database"
	StageRules    Stage = "rules"
)

// Request is one inbound provisioning request. Not persisted.
type Request struct {
	// RequesterID is the opaque caller identifier. Must be non-empty.
	RequesterID string

	// DisplayName is the human label for the new project; defaulted when
	// absent.
	DisplayName string
}

// Warning is a non-fatal, best-effort step failure attached to a
// successful result so callers can assert on degraded outcomes.
type Warning struct {
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
}

// ClientFactory builds a platform client from a bearer token source.
// Swapped out in tests for a mock client.
type ClientFactory func(ctx context.Context, ts oauth2.TokenSource) google.Client

// AuthFunc exchanges an encoded service credential for a bearer token.
type AuthFunc func(ctx context.Context, encodedCredential string) (*oauth2.Token, error)

// State holds the progressively populated results of one pipeline run.
// It is owned by a single run and never shared.
type State struct {
	// Auth results
	Client google.Client

	// Project results
	ProjectID string

	// App results
	App       google.WebApp
	AppConfig appconfig.Config

	// Best-effort diagnostics
	Warnings []Warning
}

// Warn records a non-fatal failure for the stage and reports it on the
// observer.
func (s *State) Warn(observer Observer, stage Stage, format string, v ...interface{}) {
	w := Warning{Stage: stage, Message: fmt.Sprintf(format, v...)}
	s.Warnings = append(s.Warnings, w)
	observer.Event(Event{Type: EventWarning, Stage: stage, Message: w.Message})
}

// Context wraps the dependencies and state of one pipeline run.
type Context struct {
	context.Context
	Config    *config.Config
	Request   Request
	State     *State
	Observer  Observer
	Auth      AuthFunc
	NewClient ClientFactory
}

// NewContext creates a pipeline context for one request.
func NewContext(ctx context.Context, cfg *config.Config, req Request, auth AuthFunc, factory ClientFactory, observer Observer) *Context {
	if observer == nil {
		observer = NewConsoleObserver()
	}
	if auth == nil {
		auth = google.AcquireToken
	}
	return &Context{
		Context:   ctx,
		Config:    cfg,
		Request:   req,
		State:     &State{},
		Observer:  observer.WithFields(map[string]string{"requester": req.RequesterID}),
		Auth:      auth,
		NewClient: factory,
	}
}
