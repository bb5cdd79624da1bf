package databricks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/excusedraft/excuse-api/internal/config"
	"github.com/excusedraft/excuse-api/internal/domain"
	"github.com/excusedraft/excuse-api/internal/generation"
	"github.com/excusedraft/excuse-api/internal/platform/logger"
)

// Default request parameters, matching the serving endpoint's expected
// operating range.
const (
	defaultMaxTokens   = 500
	defaultTemperature = 0.7
	defaultTimeout     = 30 * time.Second

	// maxErrorBodyBytes caps how much of an upstream error body is read
	// for logging.
	maxErrorBodyBytes = 4096
)

// Config holds the settings for the serving-endpoint client. It is an
// explicit struct passed in at construction time; the client never
// reads environment state directly.
type Config struct {
	EndpointURL string
	APIToken    string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// ConfigFromLLM converts the application-level LLM configuration into
// the client's own config struct.
func ConfigFromLLM(cfg config.LLMConfig) Config {
	return Config{
		EndpointURL: cfg.EndpointURL,
		APIToken:    cfg.APIToken,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
		Timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

// chatMessage is a single message in the chat completions payload.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the request payload for the serving endpoint.
type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// Client calls a Databricks model-serving endpoint to generate excuse
// email drafts. Safe for concurrent use.
type Client struct {
	logger     *slog.Logger
	config     Config
	httpClient *http.Client
}

// Compile-time check that Client satisfies the generator boundary.
var _ generation.Generator = (*Client)(nil)

// NewClient creates a new serving-endpoint client with the provided
// dependencies. Returns an error wrapping generation.ErrInvalidConfig
// when required settings are missing.
func NewClient(logger *slog.Logger, cfg Config) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.EndpointURL == "" {
		return nil, fmt.Errorf("%w: endpoint URL cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.APIToken == "" {
		return nil, fmt.Errorf("%w: API token cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}

	if cfg.Temperature <= 0 {
		cfg.Temperature = defaultTemperature
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		logger:     logger,
		config:     cfg,
		httpClient: &http.Client{},
	}, nil
}

// GenerateExcuse implements generation.Generator. It builds the prompt,
// posts it to the serving endpoint with a bounded wait, and extracts a
// draft from whatever comes back. Only transport-level failures return
// an error; extraction ambiguity is absorbed by the fallback draft.
func (c *Client) GenerateExcuse(
	ctx context.Context,
	req *domain.ExcuseRequest,
) (*domain.ExcuseDraft, error) {
	log := logger.FromContextOrDefault(ctx, c.logger).With(
		slog.String("generation_id", uuid.New().String()))

	prompt, err := generation.BuildPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	payload, err := json.Marshal(chatRequest{
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(
		callCtx, http.MethodPost, c.config.EndpointURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIToken)
	httpReq.Header.Set("Content-Type", "application/json")

	log.InfoContext(ctx, "calling model serving endpoint",
		slog.String("endpoint", c.config.EndpointURL),
		slog.Int("prompt_length", len(prompt)))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.ErrorContext(ctx, "model serving call timed out",
				slog.Duration("timeout", c.config.Timeout))
			return nil, fmt.Errorf("%w: no response within %s", generation.ErrTimeout, c.config.Timeout)
		}

		log.ErrorContext(ctx, "model serving call failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", generation.ErrTransport, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn("failed to close response body", slog.String("error", closeErr.Error()))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		log.ErrorContext(ctx, "model serving returned error status",
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", string(body)))
		return nil, fmt.Errorf("%w: %d", generation.ErrUpstreamStatus, resp.StatusCode)
	}

	var envelope any
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		log.ErrorContext(ctx, "failed to decode model serving response",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: response body is not JSON: %v", generation.ErrGenerationFailed, err)
	}

	draft := generation.ExtractDraft(envelope, req)

	log.InfoContext(ctx, "excuse draft generated",
		slog.Int("subject_length", len(draft.Subject)),
		slog.Int("body_length", len(draft.Body)))

	return &draft, nil
}
