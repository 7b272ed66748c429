package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ask godoc
// @Summary     Ask the crew assistant
// @Description Forwards one question to the completion provider. Coding and off-topic questions get a fixed refusal.
// @Description A trailing `JSON: {"action": "..."}` in the model text is returned as `action`.
// @Tags        Gateway
// @Accept      json
// @Produce     json
// @Param       body body object true "{question, persona?, kb?, context?, debug?}"
// @Success     200 {object} askResp
// @Failure     400 {object} errorResp "Missing 'question' string"
// @Failure     405 {object} errorResp "Method Not Allowed"
// @Failure     413 {object} errorResp "Request body too large"
// @Failure     500 {object} errorResp "Not configured or AI unavailable"
// @Failure     502 {object} errorResp "AI upstream <status>"
// @Router      /.netlify/functions/ask [POST]
// @Router      /api/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, errorResp{Error: msgMethodNotAllowed})
		return
	}

	// Credentials are checked before the body is read.
	if !h.uc.Configured() {
		c.JSON(http.StatusInternalServerError, errorResp{Error: msgNotConfigured})
		return
	}

	req, err := h.processAskReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	out, err := h.uc.Ask(c.Request.Context(), req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newAskResp(out))
}
