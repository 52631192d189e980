package api

import (
	"net/http"

	"github.com/phrazzld/nihongo-api/internal/api/shared"
	"github.com/phrazzld/nihongo-api/internal/service"
)

// ChatHandler handles tutor chat requests.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Send handles POST /api/chat.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req ChatRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	reply, err := h.chatService.Send(r.Context(), userID, req.Message)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reply)
}

// History handles GET /api/chat/history.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	limit, err := queryInt(r, "limit", 20)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "limit must be an integer")
		return
	}

	history, err := h.chatService.History(r.Context(), userID, limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, history)
}
