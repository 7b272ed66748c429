package http

import (
	"github.com/gin-gonic/gin"

	"mccrew-ai/internal/gateway"
	"mccrew-ai/pkg/log"
)

// Handler serves the serverless-style ask endpoint.
type Handler interface {
	Ask(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc gateway.UseCase
}

// New creates a new HTTP handler for the completion gateway.
func New(l log.Logger, uc gateway.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
