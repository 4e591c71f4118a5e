// README: Recommendation and destination lookup handlers.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"waypoint/internal/modules/conversation"
	"waypoint/internal/types"
)

type RecommendationHandler struct {
	conv *conversation.Service
}

func NewRecommendationHandler(conv *conversation.Service) *RecommendationHandler {
	return &RecommendationHandler{conv: conv}
}

type recommendationsReq struct {
	SessionID string `json:"session_id"`
	Limit     int    `json:"limit"`
}

// List handles POST /api/recommendations.
func (h *RecommendationHandler) List(c *gin.Context) {
	var req recommendationsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.SessionID == "" {
		writeError(c, http.StatusBadRequest, "missing session_id")
		return
	}

	recs, p, err := h.conv.RankForSession(c.Request.Context(), types.ID(req.SessionID), req.Limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"recommendations": recs, "profile": p})
}

// GetDestination handles GET /api/destinations/:id.
func (h *RecommendationHandler) GetDestination(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid destination id")
		return
	}
	dest, err := h.conv.Destination(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, dest)
}
