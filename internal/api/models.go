package api

// Common request/response structures

// GenerateExcuseRequest defines the payload for the excuse generation endpoint.
// Tone is an open-ended set; the documented values are sincere, playful,
// corporate and assertive, but unknown tones are passed through to the model.
type GenerateExcuseRequest struct {
	Category      string `json:"category"       validate:"required"`
	Tone          string `json:"tone"           validate:"required"`
	Seriousness   int    `json:"seriousness"    validate:"required,gte=1,lte=5"`
	RecipientName string `json:"recipient_name" validate:"required"`
	SenderName    string `json:"sender_name"    validate:"required"`
	ETAWhen       string `json:"eta_when"       validate:"required"`
}

// GenerateExcuseResponse defines the response for the excuse generation
// endpoint. Success is true whenever a draft was produced, including
// via the extraction fallback; Error is populated only for transport
// and validation failures.
type GenerateExcuseResponse struct {
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse defines the response for the /health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}
