package httpserver

import (
	"github.com/gin-gonic/gin"

	"mccrew-ai/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "McCrew Assistant is up"
	HealthVersion = "1.0.0"
	ServiceName   = "mccrew-ai"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports whether a completion provider is configured. Local
// answers keep working without one, so the server is ready either way.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	aiConfigured := srv.aiConfigured != nil && srv.aiConfigured()
	response.OK(c, gin.H{
		"status":        "ready",
		"ai_configured": aiConfigured,
		"version":       HealthVersion,
		"service":       ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
