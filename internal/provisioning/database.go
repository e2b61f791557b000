package provisioning

import (
	"github.com/firelift/firelift/internal/platform/google"
	"github.com/firelift/firelift/internal/util/naming"
)

const firestoreService = "firestore.googleapis.com"

// DatabasePhase enables the document database service and creates the
// default database. Best-effort: a project without a pre-created database
// is still usable, so failures become warnings instead of aborting a
// multi-minute pipeline whose project and app already exist.
type DatabasePhase struct{}

// Stage implements the Phase interface.
func (p *DatabasePhase) Stage() Stage { return StageDatabase }

// Provision implements the Phase interface. Never returns an error.
func (p *DatabasePhase) Provision(ctx *Context) error {
	client := ctx.State.Client
	projectID := ctx.State.ProjectID

	if err := client.EnableService(ctx, projectID, firestoreService); err != nil {
		ctx.State.Warn(ctx.Observer, StageDatabase, "enabling %s: %v", firestoreService, err)
		return nil
	}

	op, err := client.CreateDatabase(ctx, projectID, naming.DatabaseID(), ctx.Config.DatabaseLocation)
	if err != nil {
		if google.IsAlreadyExists(err) {
			ctx.Observer.Event(Event{
				Type:     EventResourceExists,
				Stage:    StageDatabase,
				Resource: naming.DatabaseID(),
				Message:  "database already exists",
			})
			return nil
		}
		ctx.State.Warn(ctx.Observer, StageDatabase, "creating database: %v", err)
		return nil
	}

	if _, err := google.AwaitOperation(ctx, client, op); err != nil {
		// The existing-database case can also surface through the
		// operation payload rather than a synchronous 409.
		if google.IsAlreadyExists(err) {
			ctx.Observer.Event(Event{
				Type:     EventResourceExists,
				Stage:    StageDatabase,
				Resource: naming.DatabaseID(),
				Message:  "database already exists",
			})
			return nil
		}
		ctx.State.Warn(ctx.Observer, StageDatabase, "awaiting database creation: %v", err)
		return nil
	}

	ctx.Observer.Event(Event{
		Type:     EventResourceCreated,
		Stage:    StageDatabase,
		Resource: naming.DatabaseID(),
		Message:  "database created",
		Fields:   map[string]string{"location": ctx.Config.DatabaseLocation},
	})
	return nil
}
