package mindmate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider replays a fixed sequence of outcomes and counts calls.
// The last outcome repeats once the sequence is exhausted.
type stubProvider struct {
	calls int
	texts []string
	errs  []error
}

func (s *stubProvider) Complete(_ context.Context, _ callPlan) (string, error) {
	i := s.calls
	if i >= len(s.errs) {
		i = len(s.errs) - 1
	}
	s.calls++
	return s.texts[i], s.errs[i]
}

func fixed(text string, err error) *stubProvider {
	return &stubProvider{texts: []string{text}, errs: []error{err}}
}

func TestComplete_RetryCeiling(t *testing.T) {
	stub := fixed("", &APIError{Kind: KindServerError, Status: 503, Message: "overloaded"})

	_, err := complete(context.Background(), stub, callPlan{}, 3, time.Millisecond)

	require.Error(t, err)
	assert.Equal(t, 3, stub.calls, "a persistently failing retryable call is attempted exactly 3 times")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindTransport, apiErr.Kind)
	assert.Contains(t, apiErr.Message, "exhausted 3 attempts")
	assert.Contains(t, apiErr.Message, "overloaded", "the last failure is preserved in the message")
}

func TestComplete_NonRetryableShortCircuit(t *testing.T) {
	stub := fixed("", &APIError{Kind: KindUnauthorized, Status: 401, Message: "invalid API key"})

	_, err := complete(context.Background(), stub, callPlan{}, 3, time.Millisecond)

	require.Error(t, err)
	assert.Equal(t, 1, stub.calls, "non-retryable failures must not consume remaining attempts")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindUnauthorized, apiErr.Kind)
}

func TestComplete_RequestFailedIsFinal(t *testing.T) {
	stub := fixed("", &APIError{Kind: KindRequestFailed, Status: 404, Message: "request failed: 404 not found"})

	_, err := complete(context.Background(), stub, callPlan{}, 3, time.Millisecond)

	require.Error(t, err)
	assert.Equal(t, 1, stub.calls)
}

func TestComplete_SucceedsAfterRetryableFailure(t *testing.T) {
	stub := &stubProvider{
		texts: []string{"", "recovered"},
		errs:  []error{&APIError{Kind: KindRateLimited, Status: 429, Message: "slow down"}, nil},
	}

	text, err := complete(context.Background(), stub, callPlan{}, 3, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, 2, stub.calls)
}

func TestComplete_FirstAttemptSuccess(t *testing.T) {
	stub := fixed("ok", nil)

	text, err := complete(context.Background(), stub, callPlan{}, 3, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 1, stub.calls)
}

func TestComplete_ContextCanceledDuringPause(t *testing.T) {
	stub := fixed("", &APIError{Kind: KindServerError, Status: 500, Message: "boom"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := complete(ctx, stub, callPlan{}, 3, time.Hour)

	require.Error(t, err)
	assert.Equal(t, 1, stub.calls, "cancellation during the pause stops further attempts")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindTransport, apiErr.Kind)
}

func TestAPIError_Retryable(t *testing.T) {
	retryable := []ErrorKind{KindRateLimited, KindServerError, KindTransport}
	for _, k := range retryable {
		assert.True(t, (&APIError{Kind: k}).Retryable(), k.String())
	}
	final := []ErrorKind{KindUnauthorized, KindRequestFailed}
	for _, k := range final {
		assert.False(t, (&APIError{Kind: k}).Retryable(), k.String())
	}
}
