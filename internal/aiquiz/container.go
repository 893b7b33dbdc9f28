package aiquiz

import "context"

type AIQuizContainer struct {
	Handler *Handler
}

func NewAIQuizContainer(ctx context.Context) (*AIQuizContainer, error) {
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		return nil, err
	}
	service := NewService(provider)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
	}, nil
}
