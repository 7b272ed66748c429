package http

import (
	"strings"

	"mccrew-ai/internal/router"
)

type chatReq struct {
	Message        string `json:"message" binding:"required"`
	EmployeeID     string `json:"employee_id"`
	ConversationID string `json:"conversation_id"`
}

func (r chatReq) toInput() router.Input {
	return router.Input{
		ConversationID: strings.TrimSpace(r.ConversationID),
		Message:        r.Message,
		EmployeeID:     strings.TrimSpace(r.EmployeeID),
	}
}

type chatResp struct {
	Reply          string `json:"reply"`
	Source         string `json:"source"`
	Action         string `json:"action,omitempty"`
	ConversationID string `json:"conversation_id"`
}

func newChatResp(out router.Output, conversationID string) chatResp {
	return chatResp{
		Reply:          out.Reply,
		Source:         string(out.Source),
		Action:         out.Action,
		ConversationID: conversationID,
	}
}
