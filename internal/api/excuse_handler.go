package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/excusedraft/excuse-api/internal/api/shared"
	"github.com/excusedraft/excuse-api/internal/domain"
	"github.com/excusedraft/excuse-api/internal/generation"
	"github.com/excusedraft/excuse-api/internal/platform/logger"
)

// ExcuseHandler handles excuse generation HTTP requests
type ExcuseHandler struct {
	generator generation.Generator
	validator *validator.Validate
	logger    *slog.Logger
}

// NewExcuseHandler creates a new ExcuseHandler
func NewExcuseHandler(generator generation.Generator, log *slog.Logger) *ExcuseHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ExcuseHandler{
		generator: generator,
		validator: validator.New(),
		logger:    log,
	}
}

// GenerateExcuse handles POST /api/generate-excuse requests
func (h *ExcuseHandler) GenerateExcuse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Parse request body
	var req GenerateExcuseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		respondFailure(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		log.Debug("request validation failed", slog.String("error", err.Error()))
		respondFailure(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Construct the domain request; out-of-range values are rejected
	// here, before anything reaches the generation core.
	excuseReq, err := domain.NewExcuseRequest(
		req.Category,
		domain.Tone(req.Tone),
		req.Seriousness,
		req.RecipientName,
		req.SenderName,
		req.ETAWhen,
	)
	if err != nil {
		respondFailure(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	draft, err := h.generator.GenerateExcuse(r.Context(), excuseReq)
	if err != nil {
		status := MapErrorToStatusCode(err)
		log.Error("excuse generation failed",
			slog.String("error", err.Error()),
			slog.Int("status_code", status),
			slog.String("category", excuseReq.Category),
			slog.String("tone", string(excuseReq.Tone)))
		respondFailure(w, r, status, GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateExcuseResponse{
		Subject: draft.Subject,
		Body:    draft.Body,
		Success: true,
	})
}

// respondFailure writes an ExcuseResponse-shaped failure so clients
// always see the same envelope, success flag included.
func respondFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	shared.RespondWithJSON(w, r, status, GenerateExcuseResponse{
		Success: false,
		Error:   message,
	})
}
