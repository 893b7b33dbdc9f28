package aiquiz

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/titanous/json5"

	"github.com/mlefevre/quizzlab/internal/apperror"
	"github.com/mlefevre/quizzlab/internal/trivia"
)

// Repairs for failure modes previously observed in generator output.
var (
	// _points_: 100  ->  "points": 100
	reUnderscoreKey = regexp.MustCompile(`_([a-zA-Z0-9]+)_\s*:`)
	// "text": _Paris_  ->  "text": "Paris"
	reUnderscoreVal = regexp.MustCompile(`:\s*_([^_]+)_`)

	reDoubleQuotes = regexp.MustCompile("[“”„‟″‶]")
	reSingleQuotes = regexp.MustCompile("[‘’‚‛′‵]")
)

// Sanitize applies the heuristic string repairs to raw generator output:
// Markdown code fences are stripped, typographic quotes are normalized to
// ASCII, underscore-wrapped properties and known misspellings are repaired,
// surrounding whitespace is trimmed.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	s = reDoubleQuotes.ReplaceAllString(s, `"`)
	s = reSingleQuotes.ReplaceAllString(s, "'")

	s = reUnderscoreKey.ReplaceAllString(s, `"$1":`)
	s = reUnderscoreVal.ReplaceAllString(s, `: "$1"`)

	s = strings.ReplaceAll(s, "is_correect", "is_correct")

	return strings.TrimSpace(s)
}

// ParseDraft parses sanitized generator text into a quiz payload. The first
// pass is lenient (trailing commas, unquoted keys, single quotes are fine);
// the result is then re-encoded and decoded strictly into the payload type so
// tolerant field handling matches hand-written requests.
func ParseDraft(clean string) (*trivia.TriviaPayload, error) {
	var loose interface{}
	if err := json5.Unmarshal([]byte(clean), &loose); err != nil {
		return nil, &apperror.InvalidAIOutputError{Message: "invalid JSON from AI", Raw: clean}
	}

	canonical, err := json.Marshal(loose)
	if err != nil {
		return nil, &apperror.InvalidAIOutputError{Message: "invalid JSON from AI", Raw: clean}
	}

	var payload trivia.TriviaPayload
	if err := json.Unmarshal(canonical, &payload); err != nil {
		return nil, &apperror.InvalidAIOutputError{Message: "invalid JSON from AI", Raw: clean}
	}

	return &payload, nil
}
