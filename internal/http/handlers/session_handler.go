// README: Session handlers for creating and inspecting booking conversations.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"waypoint/internal/modules/conversation"
	"waypoint/internal/types"
)

type SessionHandler struct {
	conv *conversation.Service
}

func NewSessionHandler(conv *conversation.Service) *SessionHandler {
	return &SessionHandler{conv: conv}
}

// Create handles POST /api/sessions.
func (h *SessionHandler) Create(c *gin.Context) {
	sess, err := h.conv.CreateSession(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{
		"session_id":      sess.SessionID,
		"conversation_id": sess.ID,
		"current_section": sess.CurrentSection,
	})
}

// Get handles GET /api/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing session id")
		return
	}
	sess, err := h.conv.SessionState(c.Request.Context(), types.ID(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"session_id":              sess.SessionID,
		"conversation_id":         sess.ID,
		"current_section":         sess.CurrentSection,
		"status":                  sess.Status,
		"profile":                 sess.Profile,
		"selected_destination_id": sess.SelectedDestinationID,
	})
}
