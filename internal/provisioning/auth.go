package provisioning

import (
	"golang.org/x/oauth2"
)

// AuthPhase exchanges the configured service credential for a bearer token
// and builds the platform client for the rest of the run. The token lives
// only on this run's state; nothing is cached across requests.
type AuthPhase struct{}

// Stage implements the Phase interface.
func (p *AuthPhase) Stage() Stage { return StageAuth }

// Provision implements the Phase interface.
func (p *AuthPhase) Provision(ctx *Context) error {
	tok, err := ctx.Auth(ctx, ctx.Config.ServiceAccount)
	if err != nil {
		return err
	}

	ctx.State.Client = ctx.NewClient(ctx, oauth2.StaticTokenSource(tok))
	return nil
}
