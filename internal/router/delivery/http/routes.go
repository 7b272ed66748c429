package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the chat endpoint onto rg (normally /api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.Chat)
}
