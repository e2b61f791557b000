package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/firelift/firelift/internal/appconfig"
)

// Default API endpoints, overridable for tests.
const (
	defaultResourceManagerURL = "https://cloudresourcemanager.googleapis.com/v1"
	defaultFirebaseURL        = "https://firebase.googleapis.com/v1beta1"
	defaultServiceUsageURL    = "https://serviceusage.googleapis.com/v1"
	defaultFirestoreURL       = "https://firestore.googleapis.com/v1"
	defaultRulesURL           = "https://firebaserules.googleapis.com/v1"
)

// RealClient implements Client over the Google REST APIs.
type RealClient struct {
	httpClient *http.Client

	resourceManagerURL string
	firebaseURL        string
	serviceUsageURL    string
	firestoreURL       string
	rulesURL           string
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *RealClient) { c.httpClient = hc }
}

// WithBaseURL points every API at the same base URL (useful for tests).
func WithBaseURL(base string) ClientOption {
	return func(c *RealClient) {
		c.resourceManagerURL = base
		c.firebaseURL = base
		c.serviceUsageURL = base
		c.firestoreURL = base
		c.rulesURL = base
	}
}

// NewRealClient creates a platform client authorized by the given token
// source. Every request carries a bearer token minted from it.
func NewRealClient(ts oauth2.TokenSource, opts ...ClientOption) *RealClient {
	c := &RealClient{
		httpClient:         oauth2.NewClient(context.Background(), ts),
		resourceManagerURL: defaultResourceManagerURL,
		firebaseURL:        defaultFirebaseURL,
		serviceUsageURL:    defaultServiceUsageURL,
		firestoreURL:       defaultFirestoreURL,
		rulesURL:           defaultRulesURL,
	}
	c.httpClient.Timeout = 30 * time.Second
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateProject implements ProjectCreator.
func (c *RealClient) CreateProject(ctx context.Context, opts ProjectCreateOpts) (*Operation, error) {
	body := map[string]any{
		"projectId": opts.ProjectID,
		"name":      opts.DisplayName,
	}
	// Folder is the narrower scope and wins when both placements are set.
	switch {
	case opts.FolderID != "":
		body["parent"] = map[string]string{"type": "folder", "id": opts.FolderID}
	case opts.OrganizationID != "":
		body["parent"] = map[string]string{"type": "organization", "id": opts.OrganizationID}
	}

	var op Operation
	if err := c.doJSON(ctx, http.MethodPost, c.resourceManagerURL+"/projects", body, &op); err != nil {
		return nil, err
	}
	op.Service = ServiceResourceManager
	return &op, nil
}

// GetOperation implements OperationGetter, routing by the handle's origin.
func (c *RealClient) GetOperation(ctx context.Context, handle Operation) (*Operation, error) {
	var base string
	switch handle.Service {
	case ServiceResourceManager:
		base = c.resourceManagerURL
	case ServiceFirestore:
		base = c.firestoreURL
	default:
		base = c.firebaseURL
	}

	var op Operation
	if err := c.doJSON(ctx, http.MethodGet, base+"/"+handle.Name, nil, &op); err != nil {
		return nil, err
	}
	op.Service = handle.Service
	return &op, nil
}

// AddFirebase implements FirebaseManager.
func (c *RealClient) AddFirebase(ctx context.Context, projectID string) (*Operation, error) {
	u := fmt.Sprintf("%s/projects/%s:addFirebase", c.firebaseURL, projectID)

	var op Operation
	if err := c.doJSON(ctx, http.MethodPost, u, map[string]any{}, &op); err != nil {
		return nil, err
	}
	op.Service = ServiceFirebase
	return &op, nil
}

// CreateWebApp implements FirebaseManager.
func (c *RealClient) CreateWebApp(ctx context.Context, projectID, displayName string) (*Operation, error) {
	u := fmt.Sprintf("%s/projects/%s/webApps", c.firebaseURL, projectID)
	body := map[string]string{"displayName": displayName}

	var op Operation
	if err := c.doJSON(ctx, http.MethodPost, u, body, &op); err != nil {
		return nil, err
	}
	op.Service = ServiceFirebase
	return &op, nil
}

// GetWebAppConfig implements FirebaseManager.
func (c *RealClient) GetWebAppConfig(ctx context.Context, projectID, appID string) (appconfig.Config, error) {
	u := fmt.Sprintf("%s/projects/%s/webApps/%s/config", c.firebaseURL, projectID, appID)

	var cfg appconfig.Config
	if err := c.doJSON(ctx, http.MethodGet, u, nil, &cfg); err != nil {
		return appconfig.Config{}, err
	}
	return cfg, nil
}

// EnableService implements FirestoreManager. Enabling an already-enabled
// service succeeds on the platform side, so any 2xx is success.
func (c *RealClient) EnableService(ctx context.Context, projectID, service string) error {
	u := fmt.Sprintf("%s/projects/%s/services/%s:enable", c.serviceUsageURL, projectID, service)
	return c.doJSON(ctx, http.MethodPost, u, map[string]any{}, nil)
}

// CreateDatabase implements FirestoreManager.
func (c *RealClient) CreateDatabase(ctx context.Context, projectID, databaseID, locationID string) (*Operation, error) {
	u := fmt.Sprintf("%s/projects/%s/databases?databaseId=%s",
		c.firestoreURL, projectID, url.QueryEscape(databaseID))
	body := map[string]string{
		"type":       "FIRESTORE_NATIVE",
		"locationId": locationID,
	}

	var op Operation
	if err := c.doJSON(ctx, http.MethodPost, u, body, &op); err != nil {
		if IsAlreadyExists(err) {
			return nil, fmt.Errorf("database %s: %w", databaseID, ErrAlreadyExists)
		}
		return nil, err
	}
	op.Service = ServiceFirestore
	return &op, nil
}

// CreateRuleset implements RulesManager.
func (c *RealClient) CreateRuleset(ctx context.Context, projectID, source string) (string, error) {
	u := fmt.Sprintf("%s/projects/%s/rulesets", c.rulesURL, projectID)
	body := map[string]any{
		"source": map[string]any{
			"files": []map[string]string{
				{"name": "firestore.rules", "content": source},
			},
		},
	}

	var created struct {
		Name string `json:"name"`
	}
	if err := c.doJSON(ctx, http.MethodPost, u, body, &created); err != nil {
		return "", err
	}
	return created.Name, nil
}

// ReleaseRuleset implements RulesManager.
func (c *RealClient) ReleaseRuleset(ctx context.Context, projectID, rulesetName string) error {
	u := fmt.Sprintf("%s/projects/%s/releases", c.rulesURL, projectID)
	body := map[string]string{
		"name":        fmt.Sprintf("projects/%s/releases/cloud.firestore", projectID),
		"rulesetName": rulesetName,
	}
	return c.doJSON(ctx, http.MethodPost, u, body, nil)
}

// doJSON performs one JSON request/response round trip. Non-2xx responses
// are decoded from the googleapis error envelope into *APIError.
func (c *RealClient) doJSON(ctx context.Context, method, rawURL string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, rawURL, nil)
	}
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{HTTPStatus: resp.StatusCode}
		var envelope struct {
			Error struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
				Status  string `json:"status"`
			} `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Status = envelope.Error.Status
			apiErr.Message = envelope.Error.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
