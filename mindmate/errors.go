package mindmate

import "fmt"

// ErrorKind classifies a failed completion call. The kind decides whether the
// transport layer retries the call or surfaces the failure immediately.
type ErrorKind int

const (
	// KindUnauthorized means the API key was rejected (HTTP 401). Not retryable.
	KindUnauthorized ErrorKind = iota
	// KindRateLimited means the provider throttled the request (HTTP 429). Retryable.
	KindRateLimited
	// KindServerError covers provider-side failures (HTTP >= 500). Retryable.
	KindServerError
	// KindRequestFailed covers any other non-2xx status. Not retryable; the
	// status code and response body are preserved in the message.
	KindRequestFailed
	// KindTransport covers network-level timeouts and connection failures,
	// and is also the kind reported when the retry budget is exhausted. Retryable.
	KindTransport
)

// String returns a short human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	case KindServerError:
		return "server_error"
	case KindRequestFailed:
		return "request_failed"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// APIError is the typed outcome of a failed completion call. A call either
// succeeds with text or fails with an *APIError, never both.
type APIError struct {
	Kind ErrorKind
	// Status is the HTTP status code when the failure came from a response,
	// zero for network-level failures.
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mindmate: %s: %s", e.Kind, e.Message)
}

// Retryable reports whether the transport layer should retry after this error.
func (e *APIError) Retryable() bool {
	switch e.Kind {
	case KindRateLimited, KindServerError, KindTransport:
		return true
	default:
		return false
	}
}

// classifyStatus maps a non-2xx HTTP status and response body onto the taxonomy.
func classifyStatus(status int, body string) *APIError {
	switch {
	case status == 401:
		return &APIError{Kind: KindUnauthorized, Status: status, Message: "invalid API key"}
	case status == 429:
		return &APIError{Kind: KindRateLimited, Status: status, Message: "rate limit exceeded, try again later"}
	case status >= 500:
		return &APIError{Kind: KindServerError, Status: status, Message: fmt.Sprintf("server error (%d), try again after some time", status)}
	default:
		return &APIError{Kind: KindRequestFailed, Status: status, Message: fmt.Sprintf("request failed: %d %s", status, body)}
	}
}
