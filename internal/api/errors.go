package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/excusedraft/excuse-api/internal/domain"
	"github.com/excusedraft/excuse-api/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Upstream timeout gets its own status so callers can tell it
	// apart from other upstream failures.
	case errors.Is(err, generation.ErrTimeout):
		return http.StatusGatewayTimeout

	// Other transport-level upstream failures
	case errors.Is(err, generation.ErrUpstreamStatus),
		errors.Is(err, generation.ErrTransport),
		errors.Is(err, generation.ErrGenerationFailed):
		return http.StatusBadGateway

	// Malformed or out-of-range request data
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyCategory),
		errors.Is(err, domain.ErrEmptyTone),
		errors.Is(err, domain.ErrEmptyRecipientName),
		errors.Is(err, domain.ErrEmptySenderName),
		errors.Is(err, domain.ErrEmptyETAWhen),
		errors.Is(err, domain.ErrSeriousnessRange):
		return http.StatusBadRequest

	// Misconfiguration and everything else: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrTimeout):
		return "Request timeout"

	case errors.Is(err, generation.ErrUpstreamStatus):
		return "Model service error"

	case errors.Is(err, generation.ErrTransport):
		return "Network error contacting model service"

	case errors.Is(err, generation.ErrGenerationFailed):
		return "Invalid response from model service"

	case errors.Is(err, generation.ErrInvalidConfig):
		return "Service misconfigured"

	// Domain validation messages are already user-facing.
	case errors.Is(err, domain.ErrEmptyCategory),
		errors.Is(err, domain.ErrEmptyTone),
		errors.Is(err, domain.ErrEmptyRecipientName),
		errors.Is(err, domain.ErrEmptySenderName),
		errors.Is(err, domain.ErrEmptyETAWhen),
		errors.Is(err, domain.ErrSeriousnessRange):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'GenerateExcuseRequest.Category' Error:Field
	// validation for 'Category' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "gte":
		return "too small"
	case "lte":
		return "too large"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
