package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIPlannerClient implements PlannerClientInterface over the chat
// completions API, using the same decoding parameters as the Gemini client.
type OpenAIPlannerClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIPlannerClient(apiKey, model string) PlannerClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}

	return &OpenAIPlannerClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIPlannerClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.5,
		TopP:        0.9,
		MaxTokens:   8192,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no content generated", ErrGenerationFailed)
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIPlannerClient) Close() error {
	return nil
}
