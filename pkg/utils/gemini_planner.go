package utils

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiPlannerClient implements PlannerClientInterface using Google's Gemini
// models.
type GeminiPlannerClient struct {
	client *genai.Client
	model  string
}

func NewGeminiPlannerClient(apiKey, model string) (PlannerClientInterface, error) {
	if model == "" {
		model = "gemini-2.0-flash-lite"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlannerClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateItinerary sends the prompt with fixed decoding parameters and
// returns the raw model text.
func (c *GeminiPlannerClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.5)
	model.SetTopP(0.9)
	model.SetMaxOutputTokens(8192)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated", ErrGenerationFailed)
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiPlannerClient) Close() error {
	return c.client.Close()
}
