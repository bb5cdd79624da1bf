package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excusedraft/excuse-api/internal/api"
	"github.com/excusedraft/excuse-api/internal/config"
	"github.com/excusedraft/excuse-api/internal/domain"
)

// fixedGenerator returns the same draft for every request.
type fixedGenerator struct {
	draft domain.ExcuseDraft
}

func (g *fixedGenerator) GenerateExcuse(
	_ context.Context,
	_ *domain.ExcuseRequest,
) (*domain.ExcuseDraft, error) {
	draft := g.draft
	return &draft, nil
}

func testApplication() *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{
				Host:     "127.0.0.1",
				Port:     8000,
				LogLevel: "info",
				// Point at a directory that does not exist so the
				// static routes fall back deterministically in tests.
				StaticDir: "testdata/missing",
			},
			LLM: config.LLMConfig{
				EndpointURL: "https://serving.example.com/invocations",
				APIToken:    "secret-token",
			},
		},
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		generator: &fixedGenerator{draft: domain.ExcuseDraft{Subject: "S", Body: "B"}},
	}
}

func TestRouterGenerateExcuse(t *testing.T) {
	router := testApplication().setupRouter()

	payload, err := json.Marshal(map[string]any{
		"category":       "traveling",
		"tone":           "sincere",
		"seriousness":    3,
		"recipient_name": "Bob",
		"sender_name":    "Ann",
		"eta_when":       "tomorrow 3pm",
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(
		http.MethodPost, "/api/generate-excuse", bytes.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp api.GenerateExcuseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "S", resp.Subject)
	assert.Equal(t, "B", resp.Body)
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := testApplication().setupRouter()

	paths := []string{"/health", "/healthz", "/ready", "/ping", "/metrics", "/debug"}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
	}
}

func TestRouterServesFallbackPage(t *testing.T) {
	router := testApplication().setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Excuse Email Draft Tool")
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := testApplication().setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/generate-excuse", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouterDebugNeverLeaksToken(t *testing.T) {
	router := testApplication().setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-token")
}
