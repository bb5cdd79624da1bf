// Package generation defines the boundary between the application core
// and external LLM services, plus the provider-neutral core logic:
// prompt construction and draft extraction with a deterministic
// fallback. BuildPrompt and ExtractDraft are pure functions and are
// safe for concurrent use without synchronization.
package generation
