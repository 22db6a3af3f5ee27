package llm

import (
	"context"
	"errors"
	"testing"

	"mindful/utils/logging"
)

type stubProvider struct {
	name   string
	text   string
	err    error
	calls  int
	prompt string
	system string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(ctx context.Context, prompt, system string) (string, error) {
	s.calls++
	s.prompt = prompt
	s.system = system
	return s.text, s.err
}

func TestChainFirstSuccessShortCircuits(t *testing.T) {
	logging.InitLogger()
	a := &stubProvider{name: "a", err: errors.New("network down")}
	b := &stubProvider{name: "b", text: "X"}
	c := &stubProvider{name: "c", text: "never"}
	chain := NewChain("fallback", a, b, c)

	got := chain.Generate(context.Background(), "p", "s")
	if got != "X" {
		t.Errorf("expected first successful result, got %q", got)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Errorf("expected a and b tried once, got %d and %d", a.calls, b.calls)
	}
	if c.calls != 0 {
		t.Errorf("later providers must not be invoked after a success")
	}
}

func TestChainPassesPromptAndSystemSeparately(t *testing.T) {
	logging.InitLogger()
	p := &stubProvider{name: "p", text: "ok"}
	chain := NewChain("fallback", p)

	chain.Generate(context.Background(), "the prompt", "the system instruction")
	if p.prompt != "the prompt" || p.system != "the system instruction" {
		t.Errorf("prompt and system must reach the adapter unmodified")
	}
}

func TestChainAllFailReturnsFallback(t *testing.T) {
	logging.InitLogger()
	a := &stubProvider{name: "a", err: errors.New("boom")}
	b := &stubProvider{name: "b", err: errors.New("boom too")}
	chain := NewChain("static fallback text", a, b)

	if got := chain.Generate(context.Background(), "p", "s"); got != "static fallback text" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestChainEmptyResultCountsAsFailure(t *testing.T) {
	logging.InitLogger()
	a := &stubProvider{name: "a", text: ""}
	b := &stubProvider{name: "b", text: "real answer"}
	chain := NewChain("fallback", a, b)

	if got := chain.Generate(context.Background(), "p", "s"); got != "real answer" {
		t.Errorf("empty result must advance the chain, got %q", got)
	}
}

func TestChainNoProvidersReturnsFallback(t *testing.T) {
	logging.InitLogger()
	chain := NewChain("fallback")
	if got := chain.Generate(context.Background(), "p", "s"); got != "fallback" {
		t.Errorf("expected fallback with no providers, got %q", got)
	}
}

func TestChainTriesEachProviderAtMostOnce(t *testing.T) {
	logging.InitLogger()
	a := &stubProvider{name: "a", err: errors.New("boom")}
	chain := NewChain("fallback", a)

	chain.Generate(context.Background(), "p", "s")
	if a.calls != 1 {
		t.Errorf("no retry within a provider, got %d calls", a.calls)
	}
}
