package provisioning

import (
	"errors"

	"github.com/firelift/firelift/internal/platform/google"
	"github.com/firelift/firelift/internal/util/naming"
)

// ProjectPhase creates the isolated cloud project, optionally placed under
// the configured parent organization or folder, and waits for the create
// operation to finish.
type ProjectPhase struct{}

// Stage implements the Phase interface.
func (p *ProjectPhase) Stage() Stage { return StageProject }

// Provision implements the Phase interface.
func (p *ProjectPhase) Provision(ctx *Context) error {
	projectID := naming.ProjectID(ctx.Request.RequesterID)

	ctx.Observer.Event(Event{
		Type:     EventResourceCreating,
		Stage:    StageProject,
		Resource: projectID,
		Message:  "creating project",
	})

	op, err := ctx.State.Client.CreateProject(ctx, google.ProjectCreateOpts{
		ProjectID:      projectID,
		DisplayName:    ctx.Request.DisplayName,
		OrganizationID: ctx.Config.ParentOrganization,
		FolderID:       ctx.Config.ParentFolder,
	})
	if err != nil {
		return &CreateError{Reason: createReason(err), Err: err}
	}

	if _, err := google.AwaitOperation(ctx, ctx.State.Client, op); err != nil {
		return &CreateError{Reason: createReason(err), Err: err}
	}

	ctx.State.ProjectID = projectID
	ctx.Observer.Event(Event{
		Type:     EventResourceCreated,
		Stage:    StageProject,
		Resource: projectID,
		Message:  "project created",
	})
	return nil
}

// createReason echoes the platform error, naming the collision case
// explicitly. Collisions are not retried here: a fresh identifier needs a
// fresh pipeline invocation.
func createReason(err error) string {
	if google.IsCollision(err) {
		return "project identifier collision: " + err.Error()
	}
	var opErr *google.OperationError
	if errors.As(err, &opErr) {
		return opErr.Status.Message
	}
	return err.Error()
}
