package provisioning

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/firelift/firelift/internal/platform/google"
)

// AppPhase activates the managed platform on the project, registers the
// client web app and fetches its connection configuration. All three calls
// are fatal: without a registered app and its config the caller has nothing
// usable.
type AppPhase struct{}

// Stage implements the Phase interface.
func (p *AppPhase) Stage() Stage { return StageApp }

// Provision implements the Phase interface.
func (p *AppPhase) Provision(ctx *Context) error {
	client := ctx.State.Client
	projectID := ctx.State.ProjectID

	op, err := client.AddFirebase(ctx, projectID)
	if err != nil {
		return &FeatureError{Err: err}
	}
	if _, err := google.AwaitOperation(ctx, client, op); err != nil {
		return &FeatureError{Err: err}
	}

	app, err := p.registerApp(ctx, projectID)
	if err != nil {
		return err
	}
	ctx.State.App = app

	cfg, err := client.GetWebAppConfig(ctx, projectID, app.AppID)
	if err != nil {
		return &ConfigFetchError{Reason: err.Error(), Err: err}
	}
	// Schema validation, distinct from transport success: a 200 without
	// apiKey and projectId is still a fetch failure.
	if cfg.APIKey == "" || cfg.ProjectID == "" {
		var missing []string
		if cfg.APIKey == "" {
			missing = append(missing, "apiKey")
		}
		if cfg.ProjectID == "" {
			missing = append(missing, "projectId")
		}
		return &ConfigFetchError{
			Reason: fmt.Sprintf("platform returned incomplete config (missing %s)", strings.Join(missing, ", ")),
		}
	}

	ctx.State.AppConfig = cfg
	ctx.Observer.Event(Event{
		Type:     EventResourceCreated,
		Stage:    StageApp,
		Resource: app.AppID,
		Message:  "web app registered",
	})
	return nil
}

func (p *AppPhase) registerApp(ctx *Context, projectID string) (google.WebApp, error) {
	label := ctx.Request.DisplayName
	if label == "" {
		label = projectID
	}

	op, err := ctx.State.Client.CreateWebApp(ctx, projectID, label)
	if err != nil {
		return google.WebApp{}, &RegisterError{Err: err}
	}

	done, err := google.AwaitOperation(ctx, ctx.State.Client, op)
	if err != nil {
		return google.WebApp{}, &RegisterError{Err: err}
	}

	var app google.WebApp
	if err := json.Unmarshal(done.Response, &app); err != nil {
		return google.WebApp{}, &RegisterError{Err: fmt.Errorf("decoding app handle: %w", err)}
	}
	if app.AppID == "" {
		return google.WebApp{}, &RegisterError{Err: fmt.Errorf("operation completed without an app id")}
	}
	return app, nil
}
