package extract

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/haysc/careerscan/internal/types"
)

// responseSchema validates the decoded service reply before unmarshaling.
// The reply must be a single object; every field is optional since the
// service may legitimately find nothing for a category, but present fields
// must carry the expected shapes.
const responseSchema = `{
  "type": "object",
  "properties": {
    "work_experience":  {"type": "array", "items": {"type": "object"}},
    "education":        {"type": "array", "items": {"type": "object"}},
    "projects":         {"type": "array", "items": {"type": "object"}},
    "job_applications": {"type": "array", "items": {"type": "object"}},
    "skills":           {"type": "object"},
    "personal_info":    {"type": "object"}
  }
}`

// CleanJSONBlock removes markdown code block wrappers from a service reply.
// Models often wrap JSON in fenced blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first fence line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// locateObject narrows a reply to the outermost JSON object, tolerating
// leading or trailing prose around the object.
func locateObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// ParseResponse decodes a raw service reply into an Extraction. The reply may
// be bare JSON or fenced inside a markdown code block. A reply that is not a
// single object (bare list, scalar, prose) is a schema violation reported as
// a *ParseError, distinct from transport failures.
func ParseResponse(raw string) (*types.Extraction, error) {
	text := CleanJSONBlock(raw)

	// A top-level array must not be rescued by narrowing to its first
	// element, with or without prose around it; only prose around an object
	// is tolerated.
	bracket := strings.Index(text, "[")
	brace := strings.Index(text, "{")
	if bracket >= 0 && (brace < 0 || bracket < brace) {
		return nil, &ParseError{Message: "response is a JSON array, expected an object"}
	}

	payload, ok := locateObject(text)
	if !ok {
		return nil, &ParseError{Message: "no JSON object found in response"}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(responseSchema),
		gojsonschema.NewStringLoader(payload),
	)
	if err != nil {
		return nil, &ParseError{Message: "invalid JSON", Cause: err}
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			issues = append(issues, e.String())
		}
		return nil, &ParseError{Message: "response violates extraction schema: " + strings.Join(issues, "; ")}
	}

	var extraction types.Extraction
	if err := json.Unmarshal([]byte(payload), &extraction); err != nil {
		return nil, &ParseError{Message: "failed to unmarshal extraction", Cause: err}
	}

	return &extraction, nil
}
