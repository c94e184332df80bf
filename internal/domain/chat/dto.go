package chat

import (
	"github.com/attendify/attendify-backend-go/internal/pkg/validator"
)

type ChatRequest struct {
	Query string `json:"query"`
}

func (r *ChatRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Query) {
		errs = append(errs, validator.ValidationError{
			Field:   "query",
			Message: "query is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Action is one parsed intent plus its filter set, extracted from the model's
// reply. Filters is always present, possibly empty.
type Action struct {
	Intent            *string        `json:"intent"`
	Filters           map[string]any `json:"filters"`
	MessageToFrontend *string        `json:"message_to_frontend,omitempty"`
}

// ChatResponse carries the parsed actions and an optional soft error. Both
// fields are structurally independent: a partial action list can coexist with
// an error string.
type ChatResponse struct {
	Actions []Action `json:"actions"`
	Error   string   `json:"error,omitempty"`
}
