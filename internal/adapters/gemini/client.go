// Package gemini wraps the Google GenAI SDK for coach insights
package gemini

import (
	"context"
	"strings"

	perr "reclaim/internal/platform/errors"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Client generates freeform text from a prompt
type Client struct {
	client *genai.Client
	model  string
}

// NewClient builds a Gemini client; model falls back to a flash default
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "gemini client failed")
	}
	return &Client{client: client, model: model}, nil
}

// Generate returns the model's text response with any code fences stripped
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "gemini generate failed")
	}
	text := StripFences(result.Text())
	if text == "" {
		return "", perr.Newf(perr.ErrorCodeUnknown, "gemini empty response")
	}
	return text, nil
}

// StripFences removes a surrounding markdown code fence if present.
// Models often wrap JSON answers in ```json blocks even when asked not to
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
