package webapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func testMux(cfg Config) *http.ServeMux {
	mux := http.NewServeMux()
	RegisterRoutes(mux, cfg)
	return mux
}

func get(t *testing.T, mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleRoot(t *testing.T) {
	cfg := Config{Version: "2.1.0", Environment: "staging", Commit: "abc1234"}
	rec := get(t, testMux(cfg), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body RootResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "CI/CD Challenge App", body.App)
	require.Equal(t, "2.1.0", body.Version)
	require.Equal(t, "staging", body.Environment)
	require.Len(t, body.Endpoints, 3)
	require.Contains(t, body.Endpoints, "/health")
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, testMux(Config{Version: "1.0.0"}), "/health")

	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "healthy", body.Status)
	require.Equal(t, "1.0.0", body.Version)
}

func TestHandleVersion(t *testing.T) {
	cfg := Config{Version: "1.2.3", Environment: "production", Commit: "deadbeef"}
	rec := get(t, testMux(cfg), "/version")

	require.Equal(t, http.StatusOK, rec.Code)

	var body VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "1.2.3", body.Version)
	require.Equal(t, "production", body.Environment)
	require.Equal(t, "deadbeef", body.Commit)
}

func TestEndpointsIgnoreConfigValues(t *testing.T) {
	// All endpoints answer 200 regardless of what the environment supplied.
	rec := get(t, testMux(Config{}), "/health")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownPathNotFound(t *testing.T) {
	rec := get(t, testMux(Config{}), "/metrics")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	require.Equal(t, DefaultVersion, cfg.Version)
	require.Equal(t, DefaultEnvironment, cfg.Environment)
	require.Equal(t, DefaultPort, cfg.Port)
	require.Equal(t, DefaultCommit, cfg.Commit)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("APP_VERSION", "9.9.9")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("GIT_COMMIT", "fedcba9")

	cfg := LoadConfig()
	require.Equal(t, "9.9.9", cfg.Version)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "fedcba9", cfg.Commit)
}
