package google

import (
	"context"

	"github.com/firelift/firelift/internal/appconfig"
)

// ProjectCreateOpts holds the parameters for creating a cloud project.
type ProjectCreateOpts struct {
	ProjectID   string
	DisplayName string

	// Optional placement. At most one should be set; when both are
	// configured the folder wins as the narrower scope.
	OrganizationID string
	FolderID       string
}

// WebApp is the handle of a registered client application.
type WebApp struct {
	AppID       string `json:"appId"`
	DisplayName string `json:"displayName"`
}

// ProjectCreator creates cloud projects.
type ProjectCreator interface {
	// CreateProject submits an asynchronous project-create call and returns
	// the operation handle to poll.
	CreateProject(ctx context.Context, opts ProjectCreateOpts) (*Operation, error)
}

// OperationGetter fetches the current state of a long-running operation.
type OperationGetter interface {
	GetOperation(ctx context.Context, handle Operation) (*Operation, error)
}

// FirebaseManager activates the managed platform on a project and manages
// its client applications.
type FirebaseManager interface {
	// AddFirebase enables the managed platform feature on the project.
	AddFirebase(ctx context.Context, projectID string) (*Operation, error)

	// CreateWebApp registers a client web application under the project.
	// The completed operation's response carries the WebApp handle.
	CreateWebApp(ctx context.Context, projectID, displayName string) (*Operation, error)

	// GetWebAppConfig retrieves the public connection configuration of a
	// registered web app. Transport-level only; callers validate the schema.
	GetWebAppConfig(ctx context.Context, projectID, appID string) (appconfig.Config, error)
}

// FirestoreManager enables and creates the document database.
type FirestoreManager interface {
	// EnableService activates a platform service on the project.
	// Enabling an already-enabled service is not an error.
	EnableService(ctx context.Context, projectID, service string) error

	// CreateDatabase creates a document database at the given location.
	// Returns ErrAlreadyExists (wrapped) when the database is present.
	CreateDatabase(ctx context.Context, projectID, databaseID, locationID string) (*Operation, error)
}

// RulesManager compiles and activates access-control rulesets.
type RulesManager interface {
	// CreateRuleset uploads a rules source document and returns the ruleset
	// resource name.
	CreateRuleset(ctx context.Context, projectID, source string) (string, error)

	// ReleaseRuleset makes the named ruleset the active version for the
	// project's document database.
	ReleaseRuleset(ctx context.Context, projectID, rulesetName string) error
}

// Client combines all platform interfaces consumed by provisioning.
type Client interface {
	ProjectCreator
	OperationGetter
	FirebaseManager
	FirestoreManager
	RulesManager
}
