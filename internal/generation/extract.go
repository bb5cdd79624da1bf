package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/excusedraft/excuse-api/internal/domain"
)

// Defaults used when the model's JSON object parses but is missing a key.
const (
	defaultSubject = "Excuse Email"
	defaultBody    = "Email content could not be generated."
)

// ExtractDraft turns a decoded model-service response envelope into a
// subject/body draft. The envelope shape varies by provider
// (chat-completion choices, legacy predictions, candidates) and may be
// entirely unknown; extraction tries each known shape in order and
// degrades through fence stripping, brace isolation and JSON parsing.
//
// ExtractDraft never fails: when no usable JSON object can be isolated
// or parsed, it synthesizes a deterministic fallback draft from the
// original request. The request must be a validated, non-nil
// ExcuseRequest.
func ExtractDraft(envelope any, req *domain.ExcuseRequest) domain.ExcuseDraft {
	content := unwrapEnvelope(envelope)
	content = stripMarkdownFences(content)

	subject, body, ok := parseDraftJSON(content)
	if !ok {
		return fallbackDraft(req)
	}

	return domain.ExcuseDraft{Subject: subject, Body: body}
}

// unwrapEnvelope reduces a provider response envelope to a single
// content string. Recognized shapes, in order:
//
//	choices[0].message.content  (chat-completion style)
//	predictions[0]              (legacy serving endpoints)
//	candidates[0].content       (candidate style)
//
// The first shape whose top-level key holds a non-empty list wins.
// Anything unrecognized is stringified wholesale, which lets the
// downstream brace isolation and fallback deal with it.
func unwrapEnvelope(envelope any) string {
	result, ok := envelope.(map[string]any)
	if !ok {
		return stringify(envelope)
	}

	if choices, ok := result["choices"].([]any); ok && len(choices) > 0 {
		return contentFromChoice(choices[0])
	}

	if predictions, ok := result["predictions"].([]any); ok && len(predictions) > 0 {
		if text, ok := predictions[0].(string); ok {
			return text
		}
		return stringify(predictions[0])
	}

	if candidates, ok := result["candidates"].([]any); ok && len(candidates) > 0 {
		if candidate, ok := candidates[0].(map[string]any); ok {
			if text, ok := candidate["content"].(string); ok {
				return text
			}
		}
		return stringify(candidates[0])
	}

	return stringify(envelope)
}

// contentFromChoice extracts message content from a chat-completion
// choice. Content is usually a plain string, but some endpoints return
// a list of typed parts; in that case the first part tagged "text"
// wins, and a list with no text part is stringified.
func contentFromChoice(choice any) string {
	choiceMap, ok := choice.(map[string]any)
	if !ok {
		return stringify(choice)
	}

	message, ok := choiceMap["message"].(map[string]any)
	if !ok {
		return ""
	}

	switch content := message["content"].(type) {
	case string:
		return content
	case []any:
		for _, part := range content {
			partMap, ok := part.(map[string]any)
			if !ok {
				continue
			}
			if partMap["type"] != "text" {
				continue
			}
			if text, ok := partMap["text"].(string); ok && text != "" {
				return text
			}
		}
		return stringify(content)
	default:
		return stringify(content)
	}
}

// stripMarkdownFences removes a markdown code fence wrapper from the
// content, preferring a fence opened with a "json" tag over a generic
// one. Content without fences passes through unchanged.
func stripMarkdownFences(content string) string {
	if start := strings.Index(content, "```json"); start != -1 {
		return betweenFences(content, start+len("```json"))
	}

	if start := strings.Index(content, "```"); start != -1 {
		return betweenFences(content, start+len("```"))
	}

	return content
}

// betweenFences returns the trimmed substring from start up to the next
// fence marker, or to the end of the string when the fence is unclosed.
func betweenFences(content string, start int) string {
	rest := content[start:]
	if end := strings.Index(rest, "```"); end != -1 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// parseDraftJSON isolates the first '{' through the last '}' in the
// content and parses that substring as a JSON object. Missing keys get
// the documented defaults. ok is false when no brace pair is found or
// the candidate substring is not valid JSON.
func parseDraftJSON(content string) (subject, body string, ok bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return "", "", false
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(content[start:end+1]), &parsed); err != nil {
		return "", "", false
	}

	subject = defaultSubject
	if s, found := parsed["subject"].(string); found {
		subject = s
	}

	body = defaultBody
	if b, found := parsed["body"].(string); found {
		body = b
	}

	return subject, body, true
}

// fallbackDraft synthesizes the deterministic draft used when the model
// output yields no parseable JSON object. The user always receives a
// usable email, never a raw-JSON leak or a hard failure.
func fallbackDraft(req *domain.ExcuseRequest) domain.ExcuseDraft {
	subject := fmt.Sprintf("%s - %s", req.Category, req.ETAWhen)
	body := fmt.Sprintf(
		"Dear %s,\n\nI wanted to let you know that I will be %s.\n\n%s\n\nBest regards,\n%s",
		req.RecipientName,
		strings.ToLower(req.Category),
		req.ETAWhen,
		req.SenderName,
	)

	return domain.ExcuseDraft{Subject: subject, Body: body}
}

// stringify renders an arbitrary decoded JSON value as text. Used for
// unknown envelope shapes so extraction can still fall through to brace
// isolation and, failing that, the fallback template.
func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}
