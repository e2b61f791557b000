package provisioning

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/firelift/firelift/internal/appconfig"
	"github.com/firelift/firelift/internal/config"
	"github.com/firelift/firelift/internal/platform/google"
)

// Result is a successful provisioning outcome. The returned config is the
// caller's to keep; the service holds no copy after the response is sent.
type Result struct {
	ProjectID string           `json:"projectId"`
	Config    appconfig.Config `json:"config"`
	Warnings  []Warning        `json:"warnings,omitempty"`
}

// HealthStatus is the liveness probe payload.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Service orchestrates the provisioning pipeline for inbound requests.
// Requests are handled independently; the service carries no mutable
// per-request state.
type Service struct {
	cfg       *config.Config
	observer  Observer
	auth      AuthFunc
	newClient ClientFactory
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithObserver sets the diagnostics observer.
func WithObserver(o Observer) ServiceOption {
	return func(s *Service) { s.observer = o }
}

// WithClientFactory overrides how platform clients are built (tests swap in
// a mock here).
func WithClientFactory(f ClientFactory) ServiceOption {
	return func(s *Service) { s.newClient = f }
}

// WithAuthFunc overrides the credential-to-token exchange.
func WithAuthFunc(f AuthFunc) ServiceOption {
	return func(s *Service) { s.auth = f }
}

// NewService creates a provisioning service.
func NewService(cfg *config.Config, opts ...ServiceOption) *Service {
	s := &Service{
		cfg:      cfg,
		observer: NewConsoleObserver(),
		auth:     google.AcquireToken,
		newClient: func(ctx context.Context, ts oauth2.TokenSource) google.Client {
			return google.NewRealClient(ts)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Provision runs the full pipeline for one request. Fatal step failures
// short-circuit and are returned as errors; best-effort failures surface as
// warnings on the result. Re-invoking for the same requester always creates
// a new project with a fresh identifier.
func (s *Service) Provision(ctx context.Context, req Request) (*Result, error) {
	// Fail fast before any network call when no credential is configured.
	if s.cfg.ServiceAccount == "" {
		return nil, ErrNotConfigured
	}
	if req.RequesterID == "" {
		return nil, fmt.Errorf("requester id must not be empty")
	}
	if req.DisplayName == "" {
		req.DisplayName = "Firelift App"
	}

	start := time.Now()
	pctx := NewContext(ctx, s.cfg, req, s.auth, s.newClient, s.observer)

	err := RunPhases(pctx, Phases())
	observeRun(start, pctx.State.Warnings, err)
	if err != nil {
		return nil, err
	}

	return &Result{
		ProjectID: pctx.State.ProjectID,
		Config:    pctx.State.AppConfig,
		Warnings:  pctx.State.Warnings,
	}, nil
}

// Verify is a pure schema check over a candidate config: apiKey and
// projectId must be non-empty. No network call is made.
func (s *Service) Verify(cfg appconfig.Config) bool {
	return cfg.VerifyMinimal()
}

// Health reports liveness.
func (s *Service) Health() HealthStatus {
	return HealthStatus{Status: "ok", Timestamp: time.Now().UTC()}
}
