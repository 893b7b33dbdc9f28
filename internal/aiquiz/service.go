package aiquiz

import (
	"context"
	"time"

	"github.com/mlefevre/quizzlab/internal/config"
	"github.com/mlefevre/quizzlab/internal/trivia"
)

// generateTimeout caps the wall-clock time of one generator round-trip.
const generateTimeout = 60 * time.Second

// Service drafts one additional question for a quiz-in-progress. It never
// persists anything: the draft only reaches the store if the caller submits it
// through the regular create/replace flow.
type Service interface {
	GenerateQuestion(ctx context.Context, req GenerateRequest) (*trivia.TriviaPayload, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestion(ctx context.Context, req GenerateRequest) (*trivia.TriviaPayload, error) {
	log := config.WithContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	raw, err := s.provider.Generate(ctx, BuildPrompt(req))
	if err != nil {
		return nil, err
	}

	draft, err := ParseDraft(Sanitize(raw))
	if err != nil {
		log.WithError(err).Warn("generator output did not parse")
		return nil, err
	}

	log.WithField("questions", len(draft.Questions)).Info("draft question generated")
	return draft, nil
}
