package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excusedraft/excuse-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:     "0.0.0.0",
			Port:     8000,
			LogLevel: "info",
		},
		LLM: config.LLMConfig{
			EndpointURL: "https://serving.example.com/invocations",
			APIToken:    "secret-token",
		},
	}
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewHealthHandler(testConfig()).Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, Version, resp.Version)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestProbeEndpoints(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(testConfig())

	tests := []struct {
		name    string
		handler http.HandlerFunc
		key     string
		want    string
	}{
		{name: "healthz", handler: h.Healthz, key: "status", want: "ok"},
		{name: "ready", handler: h.Ready, key: "status", want: "ready"},
		{name: "ping", handler: h.Ping, key: "message", want: "pong"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			tc.handler(rec, httptest.NewRequest(http.MethodGet, "/"+tc.name, nil))

			assert.Equal(t, http.StatusOK, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.want, resp[tc.key])
		})
	}
}

func TestMetricsCountsRequests(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(testConfig())

	counted := h.CountRequests(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	for i := 0; i < 3; i++ {
		counted.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/generate-excuse", nil))
	}

	rec := httptest.NewRecorder()
	h.Metrics(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# TYPE excuse_generator_requests_total counter")
	assert.Contains(t, rec.Body.String(), "excuse_generator_requests_total 3")
}

func TestDebugRedactsToken(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewHealthHandler(testConfig()).Debug(rec, httptest.NewRequest(http.MethodGet, "/debug", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-token")
	assert.Contains(t, rec.Body.String(), `"api_token":"***"`)

	// Unset token is reported as such.
	cfg := testConfig()
	cfg.LLM.APIToken = ""
	rec = httptest.NewRecorder()
	NewHealthHandler(cfg).Debug(rec, httptest.NewRequest(http.MethodGet, "/debug", nil))
	assert.Contains(t, rec.Body.String(), `"api_token":"Not set"`)
}
