package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when excuse generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate excuse email")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrTimeout is returned when the upstream model service does not answer in time
	ErrTimeout = errors.New("timed out waiting for model service response")

	// ErrTransport is returned for connection-level failures reaching the model service
	ErrTransport = errors.New("network error calling model service")

	// ErrUpstreamStatus is returned when the model service answers with a non-2xx status
	ErrUpstreamStatus = errors.New("model service returned an error status")
)
