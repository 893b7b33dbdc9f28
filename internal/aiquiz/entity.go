package aiquiz

import "github.com/mlefevre/quizzlab/internal/trivia"

// GenerateRequest carries the quiz-in-progress and free-text guidance from the
// editor. The snapshot is echoed back to the generator so it can match the
// quiz's language and difficulty.
type GenerateRequest struct {
	Trivia  trivia.TriviaPayload `json:"trivia"`
	Context string               `json:"context"`
}
