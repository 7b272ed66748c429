package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mccrew-ai/internal/gateway"
)

// maxBodyBytes caps the request body.
const maxBodyBytes = 64 << 10

// processAskReq decodes the body leniently: a syntax error is a malformed body,
// a missing or non-string question is ErrMissingQuestion, and optional fields of
// the wrong type are ignored.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, fmt.Errorf("%w: limit %d bytes", errBodyTooLarge, tooLarge.Limit)
		}
		return req, fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	if strings.TrimSpace(string(body)) == "" {
		body = []byte("{}")
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return req, fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	fields, _ := decoded.(map[string]any)

	question, ok := fields["question"].(string)
	if !ok || strings.TrimSpace(question) == "" {
		return req, gateway.ErrMissingQuestion
	}
	req.Question = question
	req.Persona, _ = fields["persona"].(string)
	req.Knowledge, _ = fields["kb"].(string)
	req.Context, _ = fields["context"].(map[string]any)
	req.Debug, _ = fields["debug"].(bool)

	return req, nil
}
