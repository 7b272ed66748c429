package http

import (
	"encoding/json"

	"mccrew-ai/internal/gateway"
)

// --- Request DTOs ---

type askReq struct {
	Question  string
	Persona   string
	Knowledge string
	Context   map[string]any
	Debug     bool
}

func (r askReq) toInput() gateway.AskInput {
	return gateway.AskInput{
		Question:  r.Question,
		Persona:   r.Persona,
		Knowledge: r.Knowledge,
		Context:   r.Context,
		Debug:     r.Debug,
	}
}

// --- Response DTOs ---

type askResp struct {
	Answer string          `json:"answer"`
	Action string          `json:"action,omitempty"`
	Raw    json.RawMessage `json:"raw,omitempty"`
}

func (h *handler) newAskResp(o gateway.AskOutput) askResp {
	return askResp{
		Answer: o.Reply.Text,
		Action: o.Reply.Action,
		Raw:    o.Raw,
	}
}

type errorResp struct {
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}
