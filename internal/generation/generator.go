package generation

import (
	"context"

	"github.com/excusedraft/excuse-api/internal/domain"
)

// Generator defines the interface for generating excuse email drafts.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// GenerateExcuse produces an email draft for the given request.
	//
	// Implementations own the network call to the model service.
	// Extraction ambiguity is never an error: implementations absorb it
	// into the deterministic fallback via ExtractDraft. Errors are
	// reserved for transport-level failures (see errors.go), in which
	// case no draft is returned.
	GenerateExcuse(ctx context.Context, req *domain.ExcuseRequest) (*domain.ExcuseDraft, error)
}
