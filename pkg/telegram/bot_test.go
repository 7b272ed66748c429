package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mccrew-ai/pkg/telegram"
)

func TestBot(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)

		var key string
		switch {
		case strings.HasSuffix(r.URL.Path, "/setWebhook"):
			key, _ = req["url"].(string)
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			key, _ = req["text"].(string)
			if req["chat_id"] != float64(12345) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "chat not found"}`))
				return
			}
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}

		switch key {
		case "cause_error":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok": false, "description": "invalid request"}`))
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`{"ok": true}`))
		}
	}))
	defer ts.Close()

	ctx := context.Background()
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid request") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessageWithMode Success", func(t *testing.T) {
		if err := bot.SendMessageWithMode(ctx, 12345, "Hello", "Markdown"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessage Unknown Chat", func(t *testing.T) {
		err := bot.SendMessage(ctx, 1, "Hello")
		if err == nil || !strings.Contains(err.Error(), "chat not found") {
			t.Fatalf("expected chat error, got: %v", err)
		}
	})

	t.Run("SendMessage HTTP Failed", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "cause_500"); err == nil {
			t.Fatalf("expected error for empty 500 body")
		}
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := bot.SendMessage(cctx, 12345, "Hello"); err == nil {
			t.Errorf("expected error for cancelled context")
		}
	})
}
