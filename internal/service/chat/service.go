package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/attendify/attendify-backend-go/internal/domain/chat"
	"github.com/attendify/attendify-backend-go/internal/pkg/gemini"
)

type chatServiceImpl struct {
	generator gemini.Generator
}

// NewChatService creates the intent extraction pipeline on top of a model
// gateway.
func NewChatService(generator gemini.Generator) chat.ChatService {
	return &chatServiceImpl{
		generator: generator,
	}
}

// Analyze sends the query to the model and interprets the reply as a JSON
// array of actions. The reply is untrusted free text: every stage returns a
// tagged outcome instead of propagating an error, so this method never fails
// its caller.
func (s *chatServiceImpl) Analyze(ctx context.Context, query string) chat.ChatResponse {
	reply, err := s.generator.GenerateContent(ctx, BuildPrompt(query))
	if err != nil {
		return softError(err.Error())
	}

	if reply.Blocked {
		return softError("gemini blocked the query: " + reply.BlockReason)
	}

	return parseActions(reply.Text)
}

// parseActions locates the JSON array embedded in the model's output and
// validates it element by element. Malformed elements are dropped, not fatal.
func parseActions(raw string) chat.ChatResponse {
	text := strings.TrimSpace(raw)

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || start >= end {
		return softError("could not find a JSON array in the model's response")
	}

	var decoded any
	if err := json.Unmarshal([]byte(text[start:end+1]), &decoded); err != nil {
		return softError("could not parse the model's JSON output")
	}

	items, ok := decoded.([]any)
	if !ok {
		return softError("the model's response was not a JSON array")
	}

	actions := make([]chat.Action, 0, len(items))
	for _, item := range items {
		action, ok := buildAction(item)
		if !ok {
			slog.Warn("skipping malformed action in model response", "item", item)
			continue
		}
		actions = append(actions, action)
	}

	return chat.ChatResponse{Actions: actions}
}

// buildAction validates one decoded array element. An action needs an intent
// key (string or null) and a filters object; message_to_frontend is optional.
func buildAction(item any) (chat.Action, bool) {
	obj, ok := item.(map[string]any)
	if !ok {
		return chat.Action{}, false
	}

	intentRaw, ok := obj["intent"]
	if !ok {
		return chat.Action{}, false
	}
	var intent *string
	switch v := intentRaw.(type) {
	case nil:
	case string:
		intent = &v
	default:
		return chat.Action{}, false
	}

	filtersRaw, ok := obj["filters"]
	if !ok {
		return chat.Action{}, false
	}
	filters, ok := filtersRaw.(map[string]any)
	if !ok {
		return chat.Action{}, false
	}
	if filters == nil {
		filters = map[string]any{}
	}

	var message *string
	if msgRaw, ok := obj["message_to_frontend"]; ok && msgRaw != nil {
		msg, ok := msgRaw.(string)
		if !ok {
			return chat.Action{}, false
		}
		message = &msg
	}

	return chat.Action{
		Intent:            intent,
		Filters:           filters,
		MessageToFrontend: message,
	}, true
}

func softError(message string) chat.ChatResponse {
	return chat.ChatResponse{
		Actions: []chat.Action{},
		Error:   message,
	}
}
