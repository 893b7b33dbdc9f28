package trivia

import (
	"encoding/json"
	"time"
)

// TriviaPayload is the full quiz tree sent by clients on create/replace, and the
// shape the AI draft augmenter returns.
type TriviaPayload struct {
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	Image       *string           `json:"image,omitempty"`
	IsPublic    *bool             `json:"is_public,omitempty"`
	OwnerUserID uint              `json:"owner_user_id,omitempty"`
	Questions   []QuestionPayload `json:"questions"`
}

type QuestionPayload struct {
	Statement  string          `json:"statement"`
	Type       string          `json:"type,omitempty"`
	Points     OptionalInt     `json:"points,omitempty"`
	TimeLimitS OptionalInt     `json:"time_limit_s,omitempty"`
	Position   OptionalInt     `json:"position,omitempty"`
	Answers    []AnswerPayload `json:"answers"`
}

type AnswerPayload struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// TriviaSummary is the list view: no nested questions or answers.
type TriviaSummary struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsPublic    bool      `json:"is_public"`
	OwnerUserID uint      `json:"owner_user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VisibilityResponse struct {
	ID       uint `json:"id"`
	IsPublic bool `json:"is_public"`
}

// OptionalInt decodes a JSON number that may be absent or garbage. Anything
// that is not a number leaves the value unset so the field falls back to its
// default, which keeps hand-written and AI-drafted payloads usable.
type OptionalInt struct {
	Value int
	Set   bool
}

func (o *OptionalInt) UnmarshalJSON(b []byte) error {
	// json.Unmarshal leaves a float64 untouched on null, so guard it here
	if string(b) == "null" {
		o.Set = false
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		o.Set = false
		return nil
	}
	o.Value = int(n)
	o.Set = true
	return nil
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Or returns the value, or def when the field was absent or non-numeric.
func (o OptionalInt) Or(def int) int {
	if o.Set {
		return o.Value
	}
	return def
}
