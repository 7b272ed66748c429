package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"mccrew-ai/internal/router"
	"mccrew-ai/internal/router/delivery/telegram"
	"mccrew-ai/pkg/log"
	pkgTelegram "mccrew-ai/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockRouter struct {
	mu         sync.Mutex
	out        router.Output
	err        error
	inputs     []router.Input
	remembered map[string]string
}

func (m *mockRouter) Handle(ctx context.Context, in router.Input) (router.Output, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, in)
	return m.out, m.err
}

func (m *mockRouter) RememberEmployee(ctx context.Context, conversationID, employeeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.remembered == nil {
		m.remembered = map[string]string{}
	}
	m.remembered[conversationID] = employeeID
	return nil
}

func (m *mockRouter) Close() {}

type captured struct {
	mu   sync.Mutex
	msgs []sentMessage
}

type sentMessage struct {
	ChatID int64
	Text   string
}

func (c *captured) add(m sentMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, m)
}

func (c *captured) snapshot() []sentMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]sentMessage(nil), c.msgs...)
}

// ── Test Helpers ───────────────────────────────────────────────────────────

func newTelegramServer(t *testing.T, sent *captured) *pkgTelegram.Bot {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			var payload pkgTelegram.SendMessageRequest
			json.NewDecoder(r.Body).Decode(&payload)
			sent.add(sentMessage{ChatID: payload.ChatID, Text: payload.Text})
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(srv.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(srv.URL)
	return bot
}

func newTestEngine(t *testing.T, r router.Router) (*gin.Engine, *captured) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sent := &captured{}
	bot := newTelegramServer(t, sent)

	engine := gin.New()
	h := telegram.New(log.NewNop(), r, bot)
	engine.POST(telegram.WebhookPath, h.HandleWebhook)
	return engine, sent
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req := httptest.NewRequest(http.MethodPost, telegram.WebhookPath, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func waitForMessages(t *testing.T, sent *captured, atLeast int) []sentMessage {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if msgs := sent.snapshot(); len(msgs) >= atLeast {
			return msgs
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d message(s), got %v", atLeast, sent.snapshot())
	return nil
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	engine, _ := newTestEngine(t, &mockRouter{})

	req := httptest.NewRequest(http.MethodPost, telegram.WebhookPath, bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	r := &mockRouter{}
	engine, _ := newTestEngine(t, r)

	body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 1})
	req := httptest.NewRequest(http.MethodPost, telegram.WebhookPath, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if len(r.inputs) != 0 {
		t.Errorf("router should not be called")
	}
}

func TestHandleStart(t *testing.T) {
	engine, sent := newTestEngine(t, &mockRouter{})

	if w := sendWebhook(engine, "/start"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	msgs := waitForMessages(t, sent, 1)
	if !strings.Contains(msgs[0].Text, "Welcome to McCrew") || msgs[0].ChatID != 123 {
		t.Errorf("unexpected message: %+v", msgs[0])
	}
}

func TestHandleID(t *testing.T) {
	r := &mockRouter{}
	engine, sent := newTestEngine(t, r)

	sendWebhook(engine, "/id 1234")
	msgs := waitForMessages(t, sent, 1)
	if msgs[0].Text != "Employee ID saved: 1234" {
		t.Errorf("unexpected reply: %q", msgs[0].Text)
	}
	r.mu.Lock()
	got := r.remembered["tg:123"]
	r.mu.Unlock()
	if got != "1234" {
		t.Errorf("remembered = %q", got)
	}
}

func TestHandleMessage_RoutesToRouter(t *testing.T) {
	r := &mockRouter{out: router.Output{Reply: "Alex — Today’s Shift", Source: router.SourceCommand}}
	engine, sent := newTestEngine(t, r)

	sendWebhook(engine, "/shift")
	msgs := waitForMessages(t, sent, 1)
	if msgs[0].Text != "Alex — Today’s Shift" {
		t.Errorf("unexpected reply: %q", msgs[0].Text)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.inputs) != 1 || r.inputs[0].ConversationID != "tg:123" || r.inputs[0].Message != "/shift" {
		t.Errorf("router inputs = %+v", r.inputs)
	}
}

func TestHandleMessage_RouterError(t *testing.T) {
	engine, sent := newTestEngine(t, &mockRouter{err: errors.New("boom")})

	sendWebhook(engine, "hello")
	msgs := waitForMessages(t, sent, 1)
	if !strings.HasPrefix(msgs[0].Text, "Sorry, something went wrong") {
		t.Errorf("unexpected reply: %q", msgs[0].Text)
	}
}

func TestNotifier(t *testing.T) {
	sent := &captured{}
	bot := newTelegramServer(t, sent)

	var fallback []string
	n := telegram.NewNotifier(bot, router.NotifierFunc(func(ctx context.Context, id, text string) error {
		fallback = append(fallback, id)
		return nil
	}))

	ctx := context.Background()
	if err := n.Notify(ctx, "tg:42", "Break over."); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if err := n.Notify(ctx, "web-conv", "Break over."); err != nil {
		t.Fatalf("Notify fallback: %v", err)
	}

	msgs := sent.snapshot()
	if len(msgs) != 1 || msgs[0].ChatID != 42 {
		t.Errorf("sent = %+v", msgs)
	}
	if len(fallback) != 1 || fallback[0] != "web-conv" {
		t.Errorf("fallback = %v", fallback)
	}
}

func TestParseConversationID(t *testing.T) {
	if id, err := telegram.ParseConversationID(telegram.ConversationID(-1001)); err != nil || id != -1001 {
		t.Errorf("round trip = %d, %v", id, err)
	}
	for _, bad := range []string{"", "web", "tg:", "tg:abc"} {
		if _, err := telegram.ParseConversationID(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}
