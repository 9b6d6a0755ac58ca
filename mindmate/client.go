package mindmate

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// Fixed fallbacks for degraded outcomes.
const (
	// NoAnswer is returned by Answer when the model produced no usable text.
	NoAnswer = "No answer generated"
)

// Client drives the two-call reasoning flow: one completion call to elicit
// discrete thinking steps, one to elicit a final answer conditioned on them.
// The two phases are independent round trips with no shared state; a caller
// may request an answer with no steps at all.
type Client struct {
	cfg Config

	// provider is lazily initialized on first use; mu guards it because a
	// single Client may serve concurrent requests.
	mu       sync.Mutex
	provider providerClient
}

// New creates a Client with the given config.
// If DetectEnv is true, it pulls missing API keys from environment variables.
func New(cfg Config) *Client {
	if cfg.DetectEnv {
		if cfg.AnthropicAPIKey == "" {
			cfg.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if cfg.OpenAIAPIKey == "" {
			cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.GoogleAPIKey == "" {
			cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
		}
	}
	return &Client{cfg: cfg.withDefaults()}
}

// Think generates the ordered thinking steps for a problem.
//
// Failures never surface as errors: a failed call yields a one-element slice
// describing the failure, so presentation code renders steps unconditionally.
// Callers that need typed errors should use Complete instead.
func (c *Client) Think(ctx context.Context, req ReasoningRequest) []string {
	text, err := c.Complete(ctx, BuildThinkingPrompt(req.Problem), req.Model, req.Detail.MaxTokens())
	if err != nil {
		return []string{fmt.Sprintf("Error during thinking: %v", err)}
	}
	return ExtractSteps(text)
}

// Answer generates the final answer for a problem, optionally conditioned on
// previously produced thinking steps. Like Think it degrades failures into
// its return value: the result is always a non-empty string.
func (c *Client) Answer(ctx context.Context, req ReasoningRequest, steps []string) string {
	text, err := c.Complete(ctx, BuildAnswerPrompt(req.Problem, steps), req.Model, req.Detail.MaxTokens())
	if err != nil {
		return fmt.Sprintf("Error during answering: %v", err)
	}
	if text == "" {
		return NoAnswer
	}
	return text
}

// Solve runs the full think-then-answer flow for a request. The answer phase
// proceeds even when the thinking phase degraded.
func (c *Client) Solve(ctx context.Context, req ReasoningRequest) ReasoningResult {
	steps := c.Think(ctx, req)
	return ReasoningResult{
		Problem: req.Problem,
		Steps:   steps,
		Answer:  c.Answer(ctx, req, steps),
	}
}

// Complete executes a single completion call with the configured retry
// policy and returns the raw model text. Unlike Think and Answer it keeps
// the typed outcome: failures are *APIError values carrying the ErrorKind.
func (c *Client) Complete(ctx context.Context, prompt, model string, maxTokens int) (string, error) {
	pc, err := c.ensureProvider()
	if err != nil {
		return "", err
	}
	if model == "" {
		model = c.cfg.DefaultModel
	}
	plan := callPlan{
		Model:     model,
		MaxTokens: maxTokens,
		Prompt:    prompt,
		Timeout:   c.cfg.Timeout,
	}
	return complete(ctx, pc, plan, c.cfg.MaxAttempts, c.cfg.RetryDelay)
}

func (c *Client) ensureProvider() (providerClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.provider != nil {
		return c.provider, nil
	}
	var (
		pc  providerClient
		err error
	)
	switch c.cfg.Backend {
	case BackendAnthropic:
		pc, err = newAnthropicProvider(c.cfg)
	case BackendOpenAI:
		pc, err = newOpenAIProvider(c.cfg)
	case BackendGoogle:
		pc, err = newGoogleProvider(c.cfg)
	default:
		return nil, fmt.Errorf("mindmate: unknown backend %q", c.cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	c.provider = pc
	return pc, nil
}
