package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"mccrew-ai/internal/gateway"
	"mccrew-ai/pkg/llmprovider"
	"mccrew-ai/pkg/log"
)

type mockUseCase struct {
	configured bool
	out        gateway.AskOutput
	err        error
	calls      int
	lastInput  gateway.AskInput
}

func (m *mockUseCase) Configured() bool { return m.configured }

func (m *mockUseCase) Ask(ctx context.Context, input gateway.AskInput) (gateway.AskOutput, error) {
	m.calls++
	m.lastInput = input
	return m.out, m.err
}

func newTestRouter(uc gateway.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, New(log.NewNop(), uc))
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var got map[string]any
	json.Unmarshal(w.Body.Bytes(), &got)
	return w, got
}

func TestAsk_Statuses(t *testing.T) {
	tests := []struct {
		name       string
		uc         *mockUseCase
		method     string
		body       string
		wantStatus int
		wantError  string
		wantCalls  int
	}{
		{
			name:       "non-POST",
			uc:         &mockUseCase{configured: true},
			method:     http.MethodGet,
			wantStatus: http.StatusMethodNotAllowed,
			wantError:  "Method Not Allowed",
		},
		{
			name:       "not configured wins over bad body",
			uc:         &mockUseCase{},
			method:     http.MethodPost,
			body:       `{not json`,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Server not configured: OPENAI_API_KEY",
		},
		{
			name:       "malformed body",
			uc:         &mockUseCase{configured: true},
			method:     http.MethodPost,
			body:       `{not json`,
			wantStatus: http.StatusInternalServerError,
			wantError:  "AI unavailable",
		},
		{
			name:       "empty body",
			uc:         &mockUseCase{configured: true},
			method:     http.MethodPost,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing 'question' string",
		},
		{
			name:       "non-string question",
			uc:         &mockUseCase{configured: true},
			method:     http.MethodPost,
			body:       `{"question": 42}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing 'question' string",
		},
		{
			name:       "whitespace question",
			uc:         &mockUseCase{configured: true},
			method:     http.MethodPost,
			body:       `{"question": "   "}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing 'question' string",
		},
		{
			name: "upstream failure",
			uc: &mockUseCase{configured: true, err: &llmprovider.UpstreamError{
				Provider: "openai", Status: 429, Detail: "rate limited",
			}},
			method:     http.MethodPost,
			body:       `{"question": "when is payday?"}`,
			wantStatus: http.StatusBadGateway,
			wantError:  "AI upstream 429",
			wantCalls:  1,
		},
		{
			name:       "other failure",
			uc:         &mockUseCase{configured: true, err: errors.New("dial tcp: refused")},
			method:     http.MethodPost,
			body:       `{"question": "when is payday?"}`,
			wantStatus: http.StatusInternalServerError,
			wantError:  "AI unavailable",
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(tt.uc)
			w, got := do(r, tt.method, APIAskPath, tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if got["error"] != tt.wantError {
				t.Errorf("error = %v, want %q", got["error"], tt.wantError)
			}
			if tt.uc.calls != tt.wantCalls {
				t.Errorf("usecase calls = %d, want %d", tt.uc.calls, tt.wantCalls)
			}
		})
	}
}

func TestAsk_Success(t *testing.T) {
	uc := &mockUseCase{configured: true, out: gateway.AskOutput{
		Reply: gateway.Reply{Text: "Checking your rota.", Action: "/shift"},
		Raw:   json.RawMessage(`{"id":"chatcmpl-1"}`),
	}}
	r := newTestRouter(uc)

	w, got := do(r, http.MethodPost, NetlifyAskPath, `{
		"question": "what's my shift?",
		"persona": "Be brief.",
		"kb": 7,
		"context": {"employeeId": "1234", "payConfig": {"nextPayday": "2024-05-10"}},
		"debug": true
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if got["answer"] != "Checking your rota." || got["action"] != "/shift" {
		t.Errorf("unexpected body %v", got)
	}
	if raw, ok := got["raw"].(map[string]any); !ok || raw["id"] != "chatcmpl-1" {
		t.Errorf("raw = %v", got["raw"])
	}

	in := uc.lastInput
	if in.Question != "what's my shift?" || in.Persona != "Be brief." || in.Knowledge != "" || !in.Debug {
		t.Errorf("unexpected input %+v", in)
	}
	if in.Context["employeeId"] != "1234" {
		t.Errorf("context not forwarded: %v", in.Context)
	}
}

func TestAsk_TextOnlyOmitsAction(t *testing.T) {
	uc := &mockUseCase{configured: true, out: gateway.AskOutput{Reply: gateway.Reply{Text: "Hi!"}}}
	r := newTestRouter(uc)

	w, got := do(r, http.MethodPost, APIAskPath, `{"question": "hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if _, ok := got["action"]; ok {
		t.Errorf("action must be omitted: %v", got)
	}
	if _, ok := got["raw"]; ok {
		t.Errorf("raw must be omitted: %v", got)
	}
}

func TestAsk_BodyTooLarge(t *testing.T) {
	uc := &mockUseCase{configured: true}
	r := newTestRouter(uc)

	body := `{"question": "when is payday?", "kb": "` + strings.Repeat("x", maxBodyBytes) + `"}`
	w, got := do(r, http.MethodPost, APIAskPath, body)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", w.Code)
	}
	if got["error"] != "Request body too large" {
		t.Errorf("error = %v", got["error"])
	}
	if uc.calls != 0 {
		t.Errorf("use case must not be called, calls = %d", uc.calls)
	}
}
