package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendify/attendify-backend-go/internal/domain/chat"
	"github.com/attendify/attendify-backend-go/internal/handler/http/response"
)

type ChatHandler interface {
	// Chat accepts a user query and returns a list of actions
	Chat(w http.ResponseWriter, r *http.Request)
}

type chatHandlerImpl struct {
	chatService chat.ChatService
}

func NewChatHandler(chatService chat.ChatService) ChatHandler {
	return &chatHandlerImpl{
		chatService: chatService,
	}
}

// Chat handles POST /api/chat
func (h *chatHandlerImpl) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req chat.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result := h.chatService.Analyze(ctx, req.Query)
	response.JSON(w, http.StatusOK, result)
}
