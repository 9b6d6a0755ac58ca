package mindmate

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

type googleProvider struct {
	client *genai.Client
}

func newGoogleProvider(cfg Config) (providerClient, error) {
	if cfg.GoogleAPIKey == "" {
		return nil, errors.New("mindmate: Google API key is required to use BackendGoogle")
	}
	gc, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.GoogleAPIKey,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.GoogleBaseURL,
		},
	})
	if err != nil {
		return nil, err
	}
	return &googleProvider{client: gc}, nil
}

func (p *googleProvider) Complete(ctx context.Context, plan callPlan) (string, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(plan.MaxTokens),
	}
	res, err := p.client.Models.GenerateContent(ctx, plan.Model, genai.Text(plan.Prompt), cfg)
	if err != nil {
		return "", classifyGoogleError(err)
	}
	return textFromGenAI(res), nil
}

// textFromGenAI concatenates the text parts of the first candidate. A missing
// candidate or content yields an empty string, never an error.
func textFromGenAI(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, part := range res.Candidates[0].Content.Parts {
		if part.Text == "" {
			continue
		}
		if out == "" {
			out = part.Text
		} else {
			out += "\n" + part.Text
		}
	}
	return out
}

// classifyGoogleError maps genai errors onto the shared taxonomy.
func classifyGoogleError(err error) *APIError {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyStatus(apiErr.Code, apiErr.Message)
	}
	return transportError(err)
}
