// README: Suggestion-chip handler.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"waypoint/internal/modules/suggestions"
)

type SuggestionHandler struct {
	suggestions *suggestions.Service
}

func NewSuggestionHandler(svc *suggestions.Service) *SuggestionHandler {
	return &SuggestionHandler{suggestions: svc}
}

type suggestionsReq struct {
	Message string `json:"message"`
	Section int    `json:"section"`
}

// Generate handles POST /api/suggestions. Chips are best-effort: failures
// return an empty list rather than an error body the UI has to special-case.
func (h *SuggestionHandler) Generate(c *gin.Context) {
	var req suggestionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	chips, err := h.suggestions.Generate(ctx, req.Message, req.Section)
	if err != nil || chips == nil {
		chips = []string{}
	}
	writeJSON(c, http.StatusOK, gin.H{"suggestions": chips})
}
