package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/firelift/firelift/cmd/fireliftd/handlers"
	"github.com/firelift/firelift/internal/api"
	"github.com/firelift/firelift/internal/config"
	"github.com/firelift/firelift/internal/platform/google"
	"github.com/firelift/firelift/internal/provisioning"
)

func testConfig() *config.Config {
	cfg := config.FromEnv()
	cfg.ServiceAccount = "ZHVtbXk="
	return cfg
}

func testService(cfg *config.Config, client google.Client) *provisioning.Service {
	return provisioning.NewService(cfg,
		provisioning.WithObserver(provisioning.DiscardObserver()),
		provisioning.WithAuthFunc(func(_ context.Context, _ string) (*oauth2.Token, error) {
			return &oauth2.Token{AccessToken: "test-token"}, nil
		}),
		provisioning.WithClientFactory(func(_ context.Context, _ oauth2.TokenSource) google.Client {
			return client
		}),
	)
}

func postJSON(t *testing.T, srv http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	cfg := testConfig()
	e := handlers.NewEcho(cfg, testService(cfg, &google.MockClient{}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status provisioning.HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "ok", status.Status)
	assert.False(t, status.Timestamp.IsZero())
}

func TestSetup_Success(t *testing.T) {
	cfg := testConfig()
	e := handlers.NewEcho(cfg, testService(cfg, &google.MockClient{}))

	rec := postJSON(t, e, "/api/setupFirebase", `{"userId":"user42"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.SetupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.ProjectID, "firelift-user42-"), "got %q", resp.ProjectID)
	assert.True(t, resp.Config.Valid())
	assert.Empty(t, resp.Warnings)
}

func TestSetup_MissingUserID(t *testing.T) {
	cfg := testConfig()
	e := handlers.NewEcho(cfg, testService(cfg, &google.MockClient{}))

	rec := postJSON(t, e, "/api/setupFirebase", `{"projectName":"My App"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "userId")
}

func TestSetup_MalformedBody(t *testing.T) {
	cfg := testConfig()
	e := handlers.NewEcho(cfg, testService(cfg, &google.MockClient{}))

	rec := postJSON(t, e, "/api/setupFirebase", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetup_NotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.ServiceAccount = ""
	e := handlers.NewEcho(cfg, testService(cfg, &google.MockClient{}))

	rec := postJSON(t, e, "/api/setupFirebase", `{"userId":"user42"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "no service credential")
	assert.NotEmpty(t, resp.Details, "development mode includes details")
}

func TestSetup_ProductionHidesDetails(t *testing.T) {
	cfg := testConfig()
	cfg.Environment = "production"
	client := &google.MockClient{
		CreateProjectFunc: func(_ context.Context, _ google.ProjectCreateOpts) (*google.Operation, error) {
			return nil, errors.New("secret internal detail")
		},
	}
	e := handlers.NewEcho(cfg, testService(cfg, client))

	rec := postJSON(t, e, "/api/setupFirebase", `{"userId":"user42"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Details)
	assert.NotContains(t, resp.Error, "secret internal detail")
}

func TestSetup_WarningsSurface(t *testing.T) {
	cfg := testConfig()
	client := &google.MockClient{
		EnableServiceFunc: func(_ context.Context, _, _ string) error {
			return errors.New("service enable refused")
		},
		ReleaseRulesetFunc: func(_ context.Context, _, _ string) error {
			return errors.New("release refused")
		},
	}
	e := handlers.NewEcho(cfg, testService(cfg, client))

	rec := postJSON(t, e, "/api/setupFirebase", `{"userId":"user42"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.SetupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Warnings, 2)
	assert.Equal(t, provisioning.StageDatabase, resp.Warnings[0].Stage)
	assert.Equal(t, provisioning.StageRules, resp.Warnings[1].Stage)
}

func TestVerify_Valid(t *testing.T) {
	cfg := testConfig()
	e := handlers.NewEcho(cfg, testService(cfg, &google.MockClient{}))

	rec := postJSON(t, e, "/api/verifyFirebase", `{"config":{"apiKey":"X","projectId":"p"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.VerifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestVerify_InvalidIsClientError(t *testing.T) {
	cfg := testConfig()
	e := handlers.NewEcho(cfg, testService(cfg, &google.MockClient{}))

	for name, body := range map[string]string{
		"missing projectId": `{"config":{"apiKey":"X"}}`,
		"missing apiKey":    `{"config":{"projectId":"p"}}`,
		"empty config":      `{"config":{}}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := postJSON(t, e, "/api/verifyFirebase", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp api.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Contains(t, resp.Error, "missing required fields")
		})
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	cfg := testConfig()
	e := handlers.NewEcho(cfg, testService(cfg, &google.MockClient{}))

	req := httptest.NewRequest(http.MethodOptions, "/api/setupFirebase", nil)
	req.Header.Set(echoHeaderOrigin, cfg.AllowedOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, cfg.AllowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_ForeignOriginRejected(t *testing.T) {
	cfg := testConfig()
	e := handlers.NewEcho(cfg, testService(cfg, &google.MockClient{}))

	req := httptest.NewRequest(http.MethodOptions, "/api/setupFirebase", nil)
	req.Header.Set(echoHeaderOrigin, "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

const echoHeaderOrigin = "Origin"
