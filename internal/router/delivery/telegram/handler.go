package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"mccrew-ai/internal/router"
	pkgResponse "mccrew-ai/pkg/response"
	pkgTelegram "mccrew-ai/pkg/telegram"
)

// HandleWebhook acknowledges the update at once and answers in the background,
// since a gateway call can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "router.delivery.telegram: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "router.delivery.telegram: processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgFailed)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return h.bot.SendMessage(ctx, chatID, msgNoMessage)
	}

	conversationID := ConversationID(chatID)
	cmd, arg, _ := strings.Cut(text, " ")
	switch strings.ToLower(cmd) {
	case "/start":
		return h.bot.SendMessage(ctx, chatID, msgWelcome)
	case "/id":
		return h.rememberEmployee(ctx, chatID, conversationID, arg)
	}

	out, err := h.router.Handle(ctx, router.Input{
		ConversationID: conversationID,
		Message:        text,
	})
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, chatID, out.Reply)
}

func (h *handler) rememberEmployee(ctx context.Context, chatID int64, conversationID, employeeID string) error {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return h.bot.SendMessage(ctx, chatID, msgIDUsage)
	}
	if err := h.router.RememberEmployee(ctx, conversationID, employeeID); err != nil {
		h.l.Errorf(ctx, "router.delivery.telegram: remember employee: %v", err)
		return h.bot.SendMessage(ctx, chatID, msgIDFailed)
	}
	return h.bot.SendMessage(ctx, chatID, fmt.Sprintf(msgIDSaved, employeeID))
}
