package llm

import (
	"context"
	"fmt"
	"time"

	"mindful/utils/logging"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client      *genai.Client
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
}

func NewGeminiClient(apiKey, model string, maxTokens int, temperature float64) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		timeout:     30 * time.Second,
	}, nil
}

func (c *GeminiClient) Name() string { return "gemini" }

// Generate runs a single GenerateContent call. The system instruction is
// passed through the config, not prepended to the prompt.
func (c *GeminiClient) Generate(ctx context.Context, prompt, system string) (string, error) {
	defer logging.LogDuration(ctx, "gemini_generate")()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			Temperature:       genai.Ptr(float32(c.temperature)),
			MaxOutputTokens:   int32(c.maxTokens),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text in gemini response")
	}
	return text, nil
}
