// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"waypoint/internal/http/handlers"
	"waypoint/internal/http/middleware"
	"waypoint/internal/modules/conversation"
	"waypoint/internal/modules/suggestions"
)

type RouterDeps struct {
	Conversation *conversation.Service
	Suggestions  *suggestions.Service
	ChatTimeout  time.Duration
	Log          zerolog.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log), middleware.Logging(deps.Log))

	chatHandler := handlers.NewChatHandler(deps.Conversation, deps.ChatTimeout)
	r.POST("/api/chat", chatHandler.Chat)

	sessionHandler := handlers.NewSessionHandler(deps.Conversation)
	r.POST("/api/sessions", sessionHandler.Create)
	r.GET("/api/sessions/:id", sessionHandler.Get)

	recHandler := handlers.NewRecommendationHandler(deps.Conversation)
	r.POST("/api/recommendations", recHandler.List)
	r.GET("/api/destinations/:id", recHandler.GetDestination)

	suggestionHandler := handlers.NewSuggestionHandler(deps.Suggestions)
	r.POST("/api/suggestions", suggestionHandler.Generate)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
