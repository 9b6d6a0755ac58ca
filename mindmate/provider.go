package mindmate

import "context"

// providerClient is the internal interface each backend implements.
// A backend performs exactly one request/response cycle per call; retry
// policy lives above it in the transport loop.
type providerClient interface {
	// Complete executes a single completion call and returns the model's
	// text. Failures are reported as *APIError so the retry loop can
	// classify them; an empty string with a nil error is a valid outcome
	// (the model returned no usable content).
	Complete(ctx context.Context, plan callPlan) (string, error)
}
