package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single Bot API call.
const DefaultTimeout = 10 * time.Second

// Bot is the Telegram Bot API client.
type Bot struct {
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL string) error {
	if err := b.call(ctx, "setWebhook", map[string]string{"url": webhookURL}); err != nil {
		return fmt.Errorf("telegram setWebhook: %w", err)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	payload := SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	}
	if err := b.call(ctx, "sendMessage", payload); err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	return nil
}

// call posts payload to a Bot API method and checks the ok flag.
func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))
	}
	if !apiResp.OK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, apiResp.Description)
	}
	return nil
}
