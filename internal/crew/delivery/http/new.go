package http

import (
	"github.com/gin-gonic/gin"

	"mccrew-ai/internal/crew"
	"mccrew-ai/pkg/log"
)

// Handler is the admin HTTP surface for crew data.
type Handler interface {
	ListEmployees(c *gin.Context)
	DetailEmployee(c *gin.Context)
	UpsertEmployee(c *gin.Context)
	ExportRota(c *gin.Context)
	GetPayConfig(c *gin.Context)
	SavePayConfig(c *gin.Context)
	NextPayday(c *gin.Context)
	ListSwaps(c *gin.Context)
	CreateSwap(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc crew.UseCase
}

// New creates a new HTTP handler for the crew domain.
func New(l log.Logger, uc crew.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
