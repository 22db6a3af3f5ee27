package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mindful/utils/logging"
)

type GPTClient struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

func NewGPTClient(apiKey, model string, maxTokens int, temperature float64) *GPTClient {
	return &GPTClient{
		apiKey:      apiKey,
		baseURL:     "https://api.openai.com/v1/chat/completions",
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GPTClient) Name() string { return "openai" }

type gptChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type gptResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate executes a single GPT completion request (non-streaming). The
// system instruction is the leading system-role message.
func (c *GPTClient) Generate(ctx context.Context, prompt, system string) (string, error) {
	defer logging.LogDuration(ctx, "gpt_generate")()

	gptReq := gptChatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	// Manual POST because we need custom headers
	body, err := json.Marshal(gptReq)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("GPT request failed: %s - %s", resp.Status, string(b))
	}

	var parsed gptResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode GPT response: %w", err)
	}

	if len(parsed.Choices) > 0 {
		return parsed.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("no content in GPT response")
}
