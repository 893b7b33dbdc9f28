package aiquiz_test

import (
	"errors"
	"testing"

	"github.com/mlefevre/quizzlab/internal/aiquiz"
	"github.com/mlefevre/quizzlab/internal/apperror"
)

func TestSanitize(t *testing.T) {
	t.Run("StripsCodeFence", func(t *testing.T) {
		raw := "```json\n{\"title\": \"Capitals\"}\n```"
		want := `{"title": "Capitals"}`
		if got := aiquiz.Sanitize(raw); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	})

	t.Run("StripsBareFence", func(t *testing.T) {
		raw := "```\n{\"title\": \"x\"}\n```"
		want := `{"title": "x"}`
		if got := aiquiz.Sanitize(raw); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	})

	t.Run("NormalizesTypographicQuotes", func(t *testing.T) {
		raw := "{“title”: “L’histoire”}"
		want := `{"title": "L'histoire"}`
		if got := aiquiz.Sanitize(raw); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	})

	t.Run("RepairsMisspelledCorrectnessField", func(t *testing.T) {
		raw := `{"answers": [{"text": "Paris", "is_correect": true}]}`
		want := `{"answers": [{"text": "Paris", "is_correct": true}]}`
		if got := aiquiz.Sanitize(raw); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	})

	t.Run("RepairsUnderscoreWrappedKeys", func(t *testing.T) {
		raw := `{_points_: 100}`
		want := `{"points": 100}`
		if got := aiquiz.Sanitize(raw); got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	})

	t.Run("TrimsWhitespace", func(t *testing.T) {
		if got := aiquiz.Sanitize("  \n{}\n  "); got != "{}" {
			t.Errorf("want {}, got %q", got)
		}
	})
}

func TestParseDraft(t *testing.T) {
	t.Run("StrictJSON", func(t *testing.T) {
		clean := `{"title": "Capitals", "questions": [{"statement": "Capital of France?", "answers": [{"text": "Paris", "is_correct": true}]}]}`
		draft, err := aiquiz.ParseDraft(clean)
		if err != nil {
			t.Fatalf("ParseDraft failed: %v", err)
		}
		if draft.Title != "Capitals" || len(draft.Questions) != 1 {
			t.Errorf("unexpected draft: %+v", draft)
		}
	})

	t.Run("LenientJSON", func(t *testing.T) {
		// trailing comma, unquoted keys and single quotes must all pass
		clean := `{title: 'Capitals', questions: [{statement: 'Capital of France?', answers: [{text: 'Paris', is_correct: true},]},]}`
		draft, err := aiquiz.ParseDraft(clean)
		if err != nil {
			t.Fatalf("lenient parse failed: %v", err)
		}
		if len(draft.Questions) != 1 || draft.Questions[0].Answers[0].Text != "Paris" {
			t.Errorf("unexpected draft: %+v", draft)
		}
	})

	t.Run("NonNumericPointsFallBack", func(t *testing.T) {
		clean := `{"title": "x", "questions": [{"statement": "q", "points": "lots", "answers": [{"text": "a", "is_correct": true}]}]}`
		draft, err := aiquiz.ParseDraft(clean)
		if err != nil {
			t.Fatalf("ParseDraft failed: %v", err)
		}
		if draft.Questions[0].Points.Set {
			t.Error("non-numeric points should be left unset")
		}
		if draft.Questions[0].Points.Or(1000) != 1000 {
			t.Error("unset points should fall back to the default")
		}
	})

	t.Run("GarbageSurfacesCleanedText", func(t *testing.T) {
		_, err := aiquiz.ParseDraft("sorry, I cannot do that")
		if err == nil {
			t.Fatal("expected an error for unparsable text")
		}
		var aiErr *apperror.InvalidAIOutputError
		if !errors.As(err, &aiErr) {
			t.Fatalf("expected *apperror.InvalidAIOutputError, got %T", err)
		}
		if aiErr.Raw != "sorry, I cannot do that" {
			t.Errorf("error should carry the cleaned text, got %q", aiErr.Raw)
		}
	})
}

func TestSanitizeThenParse(t *testing.T) {
	// a fenced, curly-quoted response must survive the full pipeline
	raw := "```json\n{“title”: “Capitals”, “questions”: [{“statement”: “Capital of Italy?”, “answers”: [{“text”: “Rome”, “is_correect”: true}]}]}\n```"

	draft, err := aiquiz.ParseDraft(aiquiz.Sanitize(raw))
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if draft.Title != "Capitals" {
		t.Errorf("title: got %q", draft.Title)
	}
	if !draft.Questions[0].Answers[0].IsCorrect {
		t.Error("repaired is_correct flag should be true")
	}
}
