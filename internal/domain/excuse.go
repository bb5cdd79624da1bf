package domain

import "errors"

// Tone describes the writing style requested for an excuse email.
type Tone string

// Documented tone values. The set is open-ended: unknown tones are
// passed through to the language model untouched, so validation only
// requires the field to be non-empty.
const (
	ToneSincere   Tone = "sincere"
	TonePlayful   Tone = "playful"
	ToneCorporate Tone = "corporate"
	ToneAssertive Tone = "assertive"
)

// Seriousness bounds, inclusive.
const (
	SeriousnessMin = 1
	SeriousnessMax = 5
)

// Common validation errors for ExcuseRequest
var (
	ErrEmptyCategory      = errors.New("excuse category cannot be empty")
	ErrEmptyTone          = errors.New("excuse tone cannot be empty")
	ErrEmptyRecipientName = errors.New("recipient name cannot be empty")
	ErrEmptySenderName    = errors.New("sender name cannot be empty")
	ErrEmptyETAWhen       = errors.New("eta/when cannot be empty")
	ErrSeriousnessRange   = errors.New("seriousness must be between 1 and 5")
)

// ExcuseRequest represents a single request for an excuse email draft.
// It is request-scoped: constructed once per incoming request, treated
// as immutable afterwards, and never persisted.
type ExcuseRequest struct {
	Category      string `json:"category"`
	Tone          Tone   `json:"tone"`
	Seriousness   int    `json:"seriousness"`
	RecipientName string `json:"recipient_name"`
	SenderName    string `json:"sender_name"`
	ETAWhen       string `json:"eta_when"`
}

// ExcuseDraft is the subject/body pair produced for an ExcuseRequest,
// either parsed from the model output or synthesized from the fallback
// template. Constructed exactly once, never mutated after construction.
type ExcuseDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NewExcuseRequest creates a new ExcuseRequest with the given fields.
// Returns an error if validation fails.
func NewExcuseRequest(
	category string,
	tone Tone,
	seriousness int,
	recipientName, senderName, etaWhen string,
) (*ExcuseRequest, error) {
	req := &ExcuseRequest{
		Category:      category,
		Tone:          tone,
		Seriousness:   seriousness,
		RecipientName: recipientName,
		SenderName:    senderName,
		ETAWhen:       etaWhen,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks if the ExcuseRequest has valid data.
// Returns an error if any field fails validation.
func (r *ExcuseRequest) Validate() error {
	if r.Category == "" {
		return ErrEmptyCategory
	}

	if r.Tone == "" {
		return ErrEmptyTone
	}

	if r.Seriousness < SeriousnessMin || r.Seriousness > SeriousnessMax {
		return ErrSeriousnessRange
	}

	if r.RecipientName == "" {
		return ErrEmptyRecipientName
	}

	if r.SenderName == "" {
		return ErrEmptySenderName
	}

	if r.ETAWhen == "" {
		return ErrEmptyETAWhen
	}

	return nil
}
