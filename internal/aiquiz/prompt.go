package aiquiz

import (
	"encoding/json"
	"fmt"
)

const promptTemplate = `You are an expert quiz-building assistant. Here is the current quiz as JSON:
%s

User context: %s

Your task:
- Analyze the title, the description and the existing questions.
- If the title, an existing question or the user context is in some language (e.g. English, Spanish, Arabic, ...), the new question must be generated in that same language.
- Add ONE relevant and original question to the "questions" list, matching the style and difficulty of the quiz.
- The new question must have at least 3 answers, exactly one of them correct (is_correct: true).
- Use ONLY standard double quotes (") in the JSON, never typographic quotes.
- Return STRICTLY the complete quiz as JSON, with the new question appended to the "questions" list.
- DO NOT OUTPUT ANY TEXT, EXPLANATION OR COMMENT OUTSIDE THE JSON.
- Never put underscores, spaces or special characters around property names or values.
- Every property must be spelled correctly (e.g. "is_correct", not "is_correect").
- The JSON must be perfectly valid and ready to parse.

Expected shape:
{
  "title": "...",
  "description": "...",
  "questions": [
    ...existing questions...,
    {
      "statement": "...",
      "points": 1000,
      "time_limit_s": 30,
      "position": ...,
      "answers": [
        { "text": "...", "is_correct": true },
        { "text": "...", "is_correct": false },
        { "text": "...", "is_correct": false }
      ]
    }
  ]
}`

// BuildPrompt renders the single instruction sent to the generator.
func BuildPrompt(req GenerateRequest) string {
	snapshot, err := json.MarshalIndent(req.Trivia, "", "  ")
	if err != nil {
		snapshot = []byte("{}")
	}
	return fmt.Sprintf(promptTemplate, snapshot, req.Context)
}
