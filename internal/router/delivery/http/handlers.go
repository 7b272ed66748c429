package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mccrew-ai/internal/router"
	"mccrew-ai/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Routes one crew message: slash commands, quiz answers and policy questions are answered locally, the rest goes to the completion provider.
// @Description A new conversation id is returned when none is sent.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} response.Resp{data=chatResp}
// @Failure     400 {object} response.Resp "Empty message"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	in := req.toInput()
	out, err := h.router.Handle(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, router.ErrEmptyMessage) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(c.Request.Context(), "router.delivery.http.Chat: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newChatResp(out, in.ConversationID))
}
