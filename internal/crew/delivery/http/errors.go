package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mccrew-ai/internal/crew"
	"mccrew-ai/pkg/response"
)

// writeError maps use-case errors to HTTP statuses. Anything unknown is a 500.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, crew.ErrEmployeeNotFound):
		response.NotFound(c, err)
	case errors.Is(err, crew.ErrEmployeeIDRequired),
		errors.Is(err, crew.ErrInvalidShift),
		errors.Is(err, crew.ErrInvalidPayFrequency),
		errors.Is(err, crew.ErrInvalidDate),
		errors.Is(err, crew.ErrInvalidSwap):
		response.ErrorWithStatus(c, http.StatusBadRequest, err)
	default:
		h.l.Errorf(c.Request.Context(), "crew.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
