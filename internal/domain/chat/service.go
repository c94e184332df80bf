package chat

import "context"

// ChatService turns one free-text query into zero or more actions.
type ChatService interface {
	// Analyze is a single best-effort transformation. Failures anywhere in the
	// pipeline are reported through ChatResponse.Error, never as a Go error.
	Analyze(ctx context.Context, query string) ChatResponse
}
