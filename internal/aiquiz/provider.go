package aiquiz

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/mlefevre/quizzlab/internal/config"
)

// Provider is the external text generator. It returns raw, untrusted text; all
// cleanup and parsing happens on our side.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{
		client: client,
		model:  config.Getenv("AIQUIZ_MODEL", "gemini-2.0-flash"),
	}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	// Sampling parameters are fixed; MaxOutputTokens bounds the response size,
	// not wall-clock time.
	result, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr[float32](0.7),
			TopP:             genai.Ptr[float32](0.7),
			TopK:             genai.Ptr[float32](50),
			FrequencyPenalty: genai.Ptr[float32](1),
			MaxOutputTokens:  1536,
		},
	)
	if err != nil {
		log.WithError(err).Error("generation request failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	if raw == "" {
		return "", errors.New("empty response from model")
	}

	log.WithField("bytes", len(raw)).Debug("received generator output")
	return raw, nil
}
