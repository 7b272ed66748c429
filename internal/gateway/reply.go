package gateway

import (
	"encoding/json"
	"strings"
)

// ActionMarker prefixes the machine directive a model may append to its answer.
const ActionMarker = "JSON:"

// Reply is the parsed model answer. Action is empty for a text-only reply.
type Reply struct {
	Text   string
	Action string
}

// HasAction reports whether the reply carries a directive.
func (r Reply) HasAction() bool {
	return r.Action != ""
}

// ParseReply splits a trailing `JSON: {...}` directive off the answer text.
// A well-formed object with a string "action" sets Action. A malformed object
// is dropped and only the text before the marker is kept.
func ParseReply(answer string) Reply {
	answer = strings.TrimSpace(answer)

	idx := strings.LastIndex(answer, ActionMarker)
	if idx < 0 {
		return Reply{Text: answer}
	}
	payload := strings.TrimSpace(answer[idx+len(ActionMarker):])
	if !strings.HasPrefix(payload, "{") {
		return Reply{Text: answer}
	}

	reply := Reply{Text: strings.TrimSpace(answer[:idx])}

	var directive struct {
		Action any `json:"action"`
	}
	if err := json.Unmarshal([]byte(payload), &directive); err != nil {
		return reply
	}
	if action, ok := directive.Action.(string); ok {
		reply.Action = strings.TrimSpace(action)
	}
	return reply
}
