package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mccrew-ai/internal/gateway"
	"mccrew-ai/pkg/llmprovider"
)

var (
	errMalformedBody = errors.New("malformed request body")
	errBodyTooLarge  = errors.New("request body too large")
)

// Response error texts.
const (
	msgMethodNotAllowed = "Method Not Allowed"
	msgNotConfigured    = "Server not configured: OPENAI_API_KEY"
	msgMissingQuestion  = "Missing 'question' string"
	msgUnavailable      = "AI unavailable"
	msgBodyTooLarge     = "Request body too large"
	msgUpstreamFormat   = "AI upstream %d"
)

// mapError writes the status and body for a gateway failure.
func (h *handler) mapError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var upstream *llmprovider.UpstreamError
	switch {
	case errors.Is(err, gateway.ErrNotConfigured):
		h.l.Errorf(ctx, "gateway.delivery.http: %v", err)
		c.JSON(http.StatusInternalServerError, errorResp{Error: msgNotConfigured})
	case errors.Is(err, gateway.ErrMissingQuestion):
		c.JSON(http.StatusBadRequest, errorResp{Error: msgMissingQuestion})
	case errors.Is(err, errBodyTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, errorResp{Error: msgBodyTooLarge})
	case errors.As(err, &upstream):
		h.l.Warnf(ctx, "gateway.delivery.http: upstream %d: %s", upstream.Status, upstream.Detail)
		c.JSON(http.StatusBadGateway, errorResp{
			Error:  fmt.Sprintf(msgUpstreamFormat, upstream.Status),
			Detail: upstream.Detail,
		})
	default:
		h.l.Errorf(ctx, "gateway.delivery.http: %v", err)
		c.JSON(http.StatusInternalServerError, errorResp{Error: msgUnavailable, Detail: err.Error()})
	}
}
