package mindmate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// anthropicProvider talks to the Anthropic messages endpoint directly over
// HTTP. It is the default backend and the wire contract the client guarantees.
type anthropicProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newAnthropicProvider(cfg Config) (providerClient, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, errors.New("mindmate: Anthropic API key is required to use BackendAnthropic")
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &anthropicProvider{
		apiKey:     cfg.AnthropicAPIKey,
		baseURL:    strings.TrimSuffix(cfg.AnthropicBaseURL, "/"),
		httpClient: hc,
	}, nil
}

// anthropicRequest is the messages-endpoint payload. The endpoint requires
// max_tokens and takes the rendered prompt as a single user-role message.
type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// anthropicResponse exposes the content blocks of a messages response. The
// content list may be empty or absent; callers substitute their own default.
type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (p *anthropicProvider) Complete(ctx context.Context, plan callPlan) (string, error) {
	payload := anthropicRequest{
		Model:     plan.Model,
		MaxTokens: plan.MaxTokens,
		Messages:  []anthropicMessage{{Role: "user", Content: plan.Prompt}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", &APIError{Kind: KindRequestFailed, Message: fmt.Sprintf("marshal request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", &APIError{Kind: KindRequestFailed, Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", classifyStatus(resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &APIError{Kind: KindTransport, Message: fmt.Sprintf("decode response: %v", err)}
	}
	if len(parsed.Content) == 0 {
		return "", nil
	}
	return parsed.Content[0].Text, nil
}

// transportError wraps a network-level failure from the HTTP client.
// Timeouts and connection failures land in the same retryable kind.
func transportError(err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &APIError{Kind: KindTransport, Message: "request timed out, please try again"}
	}
	var ne interface{ Timeout() bool }
	if errors.As(err, &ne) && ne.Timeout() {
		return &APIError{Kind: KindTransport, Message: "request timed out, please try again"}
	}
	return &APIError{Kind: KindTransport, Message: fmt.Sprintf("request failed: %v", err)}
}
