// Package databricks implements the generation.Generator interface
// against a Databricks model-serving endpoint speaking the
// OpenAI-compatible chat completions protocol.
//
// The client owns the single outbound network call of the service. It
// carries a fixed upper bound on wait time and surfaces timeouts,
// connection errors and non-2xx answers as distinct generation errors;
// everything the endpoint actually returns is absorbed by the
// extraction fallback and never fails.
package databricks
