package mindmate

import "time"

// Backend identifies which completion backend to use.
type Backend string

const (
	BackendAnthropic Backend = "anthropic"
	BackendOpenAI    Backend = "openai"
	BackendGoogle    Backend = "google"
)

// DetailLevel controls the token budget granted to the model for a request.
type DetailLevel int

const (
	// DetailShort keeps the thinking terse (500 tokens).
	DetailShort DetailLevel = iota
	// DetailMedium is the default budget (1000 tokens).
	DetailMedium
	// DetailDetailed allows an extended budget (2000 tokens).
	DetailDetailed
)

// MaxTokens returns the fixed token budget for the level.
func (d DetailLevel) MaxTokens() int {
	switch d {
	case DetailShort:
		return 500
	case DetailDetailed:
		return 2000
	default:
		return 1000
	}
}

// ReasoningRequest describes one problem submission. A request is constructed
// per submission and never mutated; Think and Answer share the same request.
type ReasoningRequest struct {
	// Problem is the natural-language problem statement.
	Problem string
	// Model overrides the client's default model when non-empty.
	Model string
	// Detail selects the token budget (see DetailLevel).
	Detail DetailLevel
}

// ReasoningResult bundles the outputs of the two-call flow. Steps and Answer
// are independently producible: a degraded thinking phase does not block the
// answer phase.
type ReasoningResult struct {
	Problem string
	// Steps is the ordered sequence of thinking steps. Order is meaningful
	// and preserved end-to-end; steps are never deduplicated.
	Steps  []string
	Answer string
}

// callPlan is the normalized, backend-agnostic instruction set for a single
// completion call.
type callPlan struct {
	Model     string
	MaxTokens int
	Prompt    string
	Timeout   time.Duration
}
