package trivia_test

import (
	"errors"
	"testing"

	"github.com/mlefevre/quizzlab/internal/apperror"
	"github.com/mlefevre/quizzlab/internal/trivia"
)

func validPayload() *trivia.TriviaPayload {
	return &trivia.TriviaPayload{
		Title: "Capitals",
		Questions: []trivia.QuestionPayload{
			{
				Statement: "Capital of France?",
				Answers: []trivia.AnswerPayload{
					{Text: "Paris", IsCorrect: true},
					{Text: "Lyon", IsCorrect: false},
				},
			},
		},
	}
}

func TestValidatePayload(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		if err := trivia.ValidatePayload(validPayload()); err != nil {
			t.Fatalf("valid payload rejected: %v", err)
		}
	})

	t.Run("NilPayload", func(t *testing.T) {
		assertValidationError(t, trivia.ValidatePayload(nil))
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		p := validPayload()
		p.Title = ""
		assertValidationError(t, trivia.ValidatePayload(p))
	})

	t.Run("MissingQuestions", func(t *testing.T) {
		p := validPayload()
		p.Questions = nil
		assertValidationError(t, trivia.ValidatePayload(p))
	})

	t.Run("ZeroQuestionsIsAllowed", func(t *testing.T) {
		p := validPayload()
		p.Questions = []trivia.QuestionPayload{}
		if err := trivia.ValidatePayload(p); err != nil {
			t.Fatalf("empty question list should pass structural validation: %v", err)
		}
	})

	t.Run("MissingStatement", func(t *testing.T) {
		p := validPayload()
		p.Questions[0].Statement = ""
		err := trivia.ValidatePayload(p)
		assertValidationError(t, err)
		if err.Error() != "question #1 missing 'statement'" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("NoAnswers", func(t *testing.T) {
		p := validPayload()
		p.Questions[0].Answers = nil
		err := trivia.ValidatePayload(p)
		assertValidationError(t, err)
		if err.Error() != "question #1 must have at least 1 answer" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("NoCorrectAnswer", func(t *testing.T) {
		p := validPayload()
		p.Questions[0].Answers = []trivia.AnswerPayload{
			{Text: "Paris", IsCorrect: false},
			{Text: "Lyon", IsCorrect: false},
		}
		err := trivia.ValidatePayload(p)
		assertValidationError(t, err)
		if err.Error() != "question #1 must have at least 1 correct answer" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("SecondQuestionIndexed", func(t *testing.T) {
		p := validPayload()
		p.Questions = append(p.Questions, trivia.QuestionPayload{Statement: "Capital of Spain?"})
		err := trivia.ValidatePayload(p)
		assertValidationError(t, err)
		if err.Error() != "question #2 must have at least 1 answer" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	var vErr *apperror.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *apperror.ValidationError, got %T: %v", err, err)
	}
}
