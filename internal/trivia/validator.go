package trivia

import "github.com/mlefevre/quizzlab/internal/apperror"

// ValidatePayload applies the structural rules a quiz tree must satisfy before
// anything is written: a title, a questions list, and for every question a
// statement plus at least one answer of which at least one is correct.
// It is purely structural: duplicate titles, duplicate answer text and numeric
// ranges are not checked here.
func ValidatePayload(p *TriviaPayload) error {
	if p == nil {
		return &apperror.ValidationError{Message: "invalid payload"}
	}
	if p.Title == "" || p.Questions == nil {
		return &apperror.ValidationError{Message: "title & questions are required"}
	}

	for i, q := range p.Questions {
		if q.Statement == "" {
			return apperror.Validationf("question #%d missing 'statement'", i+1)
		}
		if len(q.Answers) == 0 {
			return apperror.Validationf("question #%d must have at least 1 answer", i+1)
		}
		hasCorrect := false
		for _, a := range q.Answers {
			if a.IsCorrect {
				hasCorrect = true
				break
			}
		}
		if !hasCorrect {
			return apperror.Validationf("question #%d must have at least 1 correct answer", i+1)
		}
	}

	return nil
}
