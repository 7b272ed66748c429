package http

import "github.com/gin-gonic/gin"

// Paths the browser widget posts to.
const (
	NetlifyAskPath = "/.netlify/functions/ask"
	APIAskPath     = "/api/ask"
)

// RegisterRoutes binds every method so non-POST requests get a JSON 405.
func RegisterRoutes(r gin.IRouter, h Handler) {
	r.Any(NetlifyAskPath, h.Ask)
	r.Any(APIAskPath, h.Ask)
}
