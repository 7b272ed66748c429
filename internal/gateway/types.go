package gateway

import (
	"encoding/json"

	"mccrew-ai/internal/model"
)

// --- UseCase Inputs ---

// AskInput is one gateway question. Persona and Knowledge fall back to the
// configured defaults when empty. Context is rendered into the system prompt.
type AskInput struct {
	Question  string
	Persona   string
	Knowledge string
	Context   map[string]any
	Debug     bool
}

// --- UseCase Outputs ---

type AskOutput struct {
	Reply Reply
	// Refused is set when the topic guard answered without calling the provider.
	Refused bool
	// Raw is the provider response body, only filled when AskInput.Debug is set.
	Raw json.RawMessage
}

// NewContext builds the context object the router sends with every question.
func NewContext(storeName, employeeID string, pay *model.PayConfig) map[string]any {
	ctx := map[string]any{
		"storeName": storeName,
	}
	if employeeID != "" {
		ctx["employeeId"] = employeeID
	}
	if pay != nil {
		ctx["payConfig"] = map[string]any{
			"frequency":  string(pay.Frequency),
			"nextPayday": pay.NextPayday,
		}
	}
	return ctx
}
