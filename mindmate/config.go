package mindmate

import (
	"net/http"
	"time"
)

// Default knobs for the transport layer.
const (
	// DefaultTimeout bounds a single completion call.
	DefaultTimeout = 15 * time.Second
	// DefaultMaxAttempts is the total attempt ceiling for retryable failures.
	DefaultMaxAttempts = 3
	// DefaultRetryDelay is the fixed pause between attempts.
	DefaultRetryDelay = 1 * time.Second

	// DefaultModel is used when neither the config nor the request names one.
	DefaultModel = "claude-3-5-sonnet-20241022"

	// anthropicBaseURL is the default completion endpoint.
	anthropicBaseURL = "https://api.anthropic.com"
)

// Config contains client-wide configuration. Config holds secrets and HTTP
// knobs; per-request options live on ReasoningRequest.
type Config struct {
	// Backend selects the completion backend. Defaults to BackendAnthropic.
	Backend Backend

	// DefaultModel is used when a request does not name a model.
	DefaultModel string

	// Anthropic configuration.
	AnthropicAPIKey  string // falls back to env ANTHROPIC_API_KEY if empty and DetectEnv is true
	AnthropicBaseURL string // optional; defaults to the public endpoint

	// OpenAI configuration.
	OpenAIAPIKey  string // falls back to env OPENAI_API_KEY if empty and DetectEnv is true
	OpenAIBaseURL string // optional custom endpoint

	// Google/GenAI configuration.
	GoogleAPIKey  string // falls back to env GOOGLE_API_KEY if empty and DetectEnv is true
	GoogleBaseURL string // optional custom endpoint

	// Shared client options.
	HTTPClient *http.Client
	Timeout    time.Duration // per-call bound; defaults to DefaultTimeout

	// Retry policy for retryable failures.
	MaxAttempts int           // total attempts; defaults to DefaultMaxAttempts
	RetryDelay  time.Duration // fixed inter-attempt pause; defaults to DefaultRetryDelay

	// Auto-detection.
	DetectEnv bool // when true, pull missing API keys from environment
}

// withDefaults fills zero-valued knobs. The original Config is not modified.
func (c Config) withDefaults() Config {
	if c.Backend == "" {
		c.Backend = BackendAnthropic
	}
	if c.DefaultModel == "" {
		c.DefaultModel = DefaultModel
	}
	if c.AnthropicBaseURL == "" {
		c.AnthropicBaseURL = anthropicBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	return c
}
