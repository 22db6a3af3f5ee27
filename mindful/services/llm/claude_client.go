package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	httputils "mindful/utils/http"
	"mindful/utils/logging"
)

const anthropicVersion = "2023-06-01"

type ClaudeClient struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

func NewClaudeClient(apiKey, model string, maxTokens int, temperature float64) *ClaudeClient {
	return &ClaudeClient{
		apiKey:      apiKey,
		baseURL:     "https://api.anthropic.com/v1/messages",
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *ClaudeClient) Name() string { return "claude" }

type claudeRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Generate runs a single (non-streaming) Messages API request. The system
// instruction rides in the dedicated system field.
func (c *ClaudeClient) Generate(ctx context.Context, prompt, system string) (string, error) {
	defer logging.LogDuration(ctx, "claude_generate")()

	req := claudeRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		System:      system,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
	}

	headers := map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": anthropicVersion,
	}

	var parsed claudeResponse
	if err := httputils.PostJSONWithHeaders(ctx, c.httpClient, c.baseURL, headers, req, &parsed); err != nil {
		return "", fmt.Errorf("claude request failed: %w", err)
	}

	for _, block := range parsed.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in claude response")
}
