package gemini

import (
	"context"
	"fmt"

	"github.com/attendify/attendify-backend-go/internal/config"
	"google.golang.org/genai"
)

// Generator is the gateway to the generative model. It is satisfied by Client
// and by fakes in tests.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (Reply, error)
}

// Reply carries the raw model output. When the provider refuses the prompt,
// Blocked is set and Text is empty; that is not an error.
type Reply struct {
	Text        string
	Blocked     bool
	BlockReason string
}

// Client wraps one process-wide Gemini client, configured once at startup and
// reused read-only afterwards.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient configures the Gemini client from the application config.
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  cfg.Model,
	}, nil
}

// GenerateContent sends one prompt to the model and returns the raw reply.
// One outbound call per invocation, no retries.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (Reply, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return Reply{}, fmt.Errorf("gemini api error: %w", err)
	}

	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return Reply{
			Blocked:     true,
			BlockReason: string(fb.BlockReason),
		}, nil
	}

	return Reply{Text: resp.Text()}, nil
}
