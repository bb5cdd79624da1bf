package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/excusedraft/excuse-api/internal/domain"
	"github.com/excusedraft/excuse-api/internal/generation"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "timeout", err: generation.ErrTimeout, want: http.StatusGatewayTimeout},
		{name: "wrapped timeout", err: fmt.Errorf("call failed: %w", generation.ErrTimeout), want: http.StatusGatewayTimeout},
		{name: "upstream status", err: generation.ErrUpstreamStatus, want: http.StatusBadGateway},
		{name: "transport", err: generation.ErrTransport, want: http.StatusBadGateway},
		{name: "generation failed", err: generation.ErrGenerationFailed, want: http.StatusBadGateway},
		{name: "seriousness range", err: domain.ErrSeriousnessRange, want: http.StatusBadRequest},
		{name: "empty category", err: domain.ErrEmptyCategory, want: http.StatusBadRequest},
		{name: "invalid config", err: generation.ErrInvalidConfig, want: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Request timeout", GetSafeErrorMessage(generation.ErrTimeout))
	assert.Equal(t, "Model service error", GetSafeErrorMessage(generation.ErrUpstreamStatus))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("secret detail")))

	// Wrapped errors keep their safe mapping, and the wrap detail
	// never appears in the message.
	msg := GetSafeErrorMessage(fmt.Errorf("%w: bearer abc123", generation.ErrUpstreamStatus))
	assert.Equal(t, "Model service error", msg)
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	err := validator.New().Struct(GenerateExcuseRequest{
		Tone:          "sincere",
		Seriousness:   3,
		RecipientName: "Bob",
		SenderName:    "Ann",
		ETAWhen:       "tomorrow",
	})
	assert.Equal(t, "Invalid Category: required field", SanitizeValidationError(err))

	err = validator.New().Struct(GenerateExcuseRequest{
		Category:      "traveling",
		Tone:          "sincere",
		Seriousness:   7,
		RecipientName: "Bob",
		SenderName:    "Ann",
		ETAWhen:       "tomorrow",
	})
	assert.Equal(t, "Invalid Seriousness: too large", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("weird error")))
}
