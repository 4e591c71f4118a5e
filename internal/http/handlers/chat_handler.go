// README: Chat handler driving the conversation progression engine.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"waypoint/internal/modules/conversation"
	"waypoint/internal/types"
)

type ChatHandler struct {
	conv    *conversation.Service
	timeout time.Duration
}

func NewChatHandler(conv *conversation.Service, timeout time.Duration) *ChatHandler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChatHandler{conv: conv, timeout: timeout}
}

type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.SessionID = strings.TrimSpace(req.SessionID)
	req.Message = strings.TrimSpace(req.Message)
	if req.SessionID == "" || req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing session_id or message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	result, err := h.conv.ProcessTurn(ctx, types.ID(req.SessionID), req.Message)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, result)
}
