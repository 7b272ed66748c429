package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// processChatReq binds the body and scopes the conversation id to the web
// channel, assigning a new one to new chats.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return chatReq{}, err
	}
	req.ConversationID = h.scopeConversation(strings.TrimSpace(req.ConversationID))
	return req, nil
}

// scopeConversation returns id under the web prefix. An id returned by an
// earlier reply already carries it and is kept as is.
func (h *handler) scopeConversation(id string) string {
	if id == "" {
		id = h.newID()
	}
	if strings.HasPrefix(id, conversationPrefix) {
		return id
	}
	return conversationPrefix + id
}
