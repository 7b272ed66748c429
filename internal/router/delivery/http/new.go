package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mccrew-ai/internal/router"
	"mccrew-ai/pkg/log"
)

// Handler serves the browser chat widget.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l      log.Logger
	router router.Router
	newID  func() string
}

// New creates a new HTTP handler for the topic router.
func New(l log.Logger, r router.Router) Handler {
	return &handler{
		l:      l,
		router: r,
		newID:  uuid.NewString,
	}
}
