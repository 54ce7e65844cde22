package utils

import (
	"context"
	"fmt"
	"strings"
)

// PlannerClientInterface is the single boundary to the generative model. A
// provider failure is reported as ErrGenerationFailed; no retry or backoff
// lives here.
type PlannerClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewPlannerClient creates a Gemini or OpenAI backed client based on config.
// An empty model name selects the provider's default.
func NewPlannerClient(provider, apiKey, model string) (PlannerClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIPlannerClient(apiKey, model), nil
	case "gemini":
		return NewGeminiPlannerClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
