// mindful/services/llm/llm.go
package llm

import (
	"context"

	"mindful/utils/logging"

	"go.uber.org/zap"
)

// Message is one chat message in the OpenAI-style wire shape shared by the
// HTTP adapters.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is one text-generation backend. Generate receives the user-facing
// prompt and the system instruction on separate channels and returns the
// generated text. Adapters own their request/response shapes and timeouts.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt, system string) (string, error)
}

// Chain tries providers in configured priority order and falls back to a
// fixed static response when all of them fail.
type Chain struct {
	providers []Provider
	fallback  string
}

func NewChain(fallback string, providers ...Provider) *Chain {
	return &Chain{providers: providers, fallback: fallback}
}

// Providers returns the configured adapters in priority order.
func (c *Chain) Providers() []Provider {
	return c.providers
}

// Generate asks each provider once, in order, returning the first non-empty
// result. Provider errors are logged and never propagated; exhausting the
// chain yields the fallback text. This branch cannot fail.
func (c *Chain) Generate(ctx context.Context, prompt, system string) string {
	defer logging.LogDuration(ctx, "llm_chain_generate")()

	for _, p := range c.providers {
		text, err := p.Generate(ctx, prompt, system)
		if err != nil {
			logging.ErrorLogger.Error("provider generate failed",
				zap.String("provider", p.Name()), zap.Error(err))
			continue
		}
		if text == "" {
			logging.ErrorLogger.Error("provider returned empty response",
				zap.String("provider", p.Name()))
			continue
		}
		return text
	}

	logging.AppLogger.Info("all providers exhausted, using fallback response",
		zap.Int("providers", len(c.providers)))
	return c.fallback
}
