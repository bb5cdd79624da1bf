package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("EXCUSE_LLM_ENDPOINT_URL", "https://serving.example.com/endpoints/chat/invocations")
	t.Setenv("EXCUSE_LLM_API_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://serving.example.com/endpoints/chat/invocations", cfg.LLM.EndpointURL)
	assert.Equal(t, "test-token", cfg.LLM.APIToken)

	// Defaults apply when the environment leaves keys unset.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 500, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 30, cfg.LLM.TimeoutSeconds)
}

func TestLoadEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("EXCUSE_LLM_ENDPOINT_URL", "https://serving.example.com/invocations")
	t.Setenv("EXCUSE_LLM_API_TOKEN", "test-token")
	t.Setenv("EXCUSE_SERVER_PORT", "9090")
	t.Setenv("EXCUSE_SERVER_LOG_LEVEL", "debug")
	t.Setenv("EXCUSE_LLM_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 5, cfg.LLM.TimeoutSeconds)
}

func TestLoadMissingRequiredValues(t *testing.T) {
	// No endpoint URL or token in the environment.
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "malformed endpoint url", key: "EXCUSE_LLM_ENDPOINT_URL", val: "not a url"},
		{name: "invalid log level", key: "EXCUSE_SERVER_LOG_LEVEL", val: "loud"},
		{name: "port out of range", key: "EXCUSE_SERVER_PORT", val: "70000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("EXCUSE_LLM_ENDPOINT_URL", "https://serving.example.com/invocations")
			t.Setenv("EXCUSE_LLM_API_TOKEN", "test-token")
			t.Setenv(tc.key, tc.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
