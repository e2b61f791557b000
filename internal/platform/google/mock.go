package google

import (
	"context"

	"github.com/firelift/firelift/internal/appconfig"
)

// MockClient is a func-field mock implementation of Client for tests.
// Unset fields return success with zero values so tests only wire the
// calls they care about.
type MockClient struct {
	CreateProjectFunc   func(ctx context.Context, opts ProjectCreateOpts) (*Operation, error)
	GetOperationFunc    func(ctx context.Context, handle Operation) (*Operation, error)
	AddFirebaseFunc     func(ctx context.Context, projectID string) (*Operation, error)
	CreateWebAppFunc    func(ctx context.Context, projectID, displayName string) (*Operation, error)
	GetWebAppConfigFunc func(ctx context.Context, projectID, appID string) (appconfig.Config, error)
	EnableServiceFunc   func(ctx context.Context, projectID, service string) error
	CreateDatabaseFunc  func(ctx context.Context, projectID, databaseID, locationID string) (*Operation, error)
	CreateRulesetFunc   func(ctx context.Context, projectID, source string) (string, error)
	ReleaseRulesetFunc  func(ctx context.Context, projectID, rulesetName string) error
}

var _ Client = (*MockClient)(nil)

func doneOp(service Service) *Operation {
	return &Operation{Name: "operations/mock", Service: service, Done: true}
}

func (m *MockClient) CreateProject(ctx context.Context, opts ProjectCreateOpts) (*Operation, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, opts)
	}
	return doneOp(ServiceResourceManager), nil
}

func (m *MockClient) GetOperation(ctx context.Context, handle Operation) (*Operation, error) {
	if m.GetOperationFunc != nil {
		return m.GetOperationFunc(ctx, handle)
	}
	done := handle
	done.Done = true
	return &done, nil
}

func (m *MockClient) AddFirebase(ctx context.Context, projectID string) (*Operation, error) {
	if m.AddFirebaseFunc != nil {
		return m.AddFirebaseFunc(ctx, projectID)
	}
	return doneOp(ServiceFirebase), nil
}

func (m *MockClient) CreateWebApp(ctx context.Context, projectID, displayName string) (*Operation, error) {
	if m.CreateWebAppFunc != nil {
		return m.CreateWebAppFunc(ctx, projectID, displayName)
	}
	op := doneOp(ServiceFirebase)
	op.Response = []byte(`{"appId":"1:000000000000:web:mock"}`)
	return op, nil
}

func (m *MockClient) GetWebAppConfig(ctx context.Context, projectID, appID string) (appconfig.Config, error) {
	if m.GetWebAppConfigFunc != nil {
		return m.GetWebAppConfigFunc(ctx, projectID, appID)
	}
	return appconfig.Config{
		APIKey:            "mock-api-key",
		AuthDomain:        projectID + ".firebaseapp.com",
		ProjectID:         projectID,
		StorageBucket:     projectID + ".appspot.com",
		MessagingSenderID: "000000000000",
		AppID:             appID,
	}, nil
}

func (m *MockClient) EnableService(ctx context.Context, projectID, service string) error {
	if m.EnableServiceFunc != nil {
		return m.EnableServiceFunc(ctx, projectID, service)
	}
	return nil
}

func (m *MockClient) CreateDatabase(ctx context.Context, projectID, databaseID, locationID string) (*Operation, error) {
	if m.CreateDatabaseFunc != nil {
		return m.CreateDatabaseFunc(ctx, projectID, databaseID, locationID)
	}
	return doneOp(ServiceFirestore), nil
}

func (m *MockClient) CreateRuleset(ctx context.Context, projectID, source string) (string, error) {
	if m.CreateRulesetFunc != nil {
		return m.CreateRulesetFunc(ctx, projectID, source)
	}
	return "projects/" + projectID + "/rulesets/mock", nil
}

func (m *MockClient) ReleaseRuleset(ctx context.Context, projectID, rulesetName string) error {
	if m.ReleaseRulesetFunc != nil {
		return m.ReleaseRulesetFunc(ctx, projectID, rulesetName)
	}
	return nil
}
