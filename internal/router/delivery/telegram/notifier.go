package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"mccrew-ai/internal/router"
	pkgTelegram "mccrew-ai/pkg/telegram"
)

// ConversationID is the router conversation id for a Telegram chat.
func ConversationID(chatID int64) string {
	return conversationPrefix + strconv.FormatInt(chatID, 10)
}

// ParseConversationID returns the chat id of a Telegram conversation.
func ParseConversationID(conversationID string) (int64, error) {
	raw, ok := strings.CutPrefix(conversationID, conversationPrefix)
	if !ok {
		return 0, errNotTelegramConversation
	}
	chatID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errNotTelegramConversation, err)
	}
	return chatID, nil
}

// Notifier pushes router notifications into Telegram chats. Conversations
// from other channels go to fallback, which may be nil.
type Notifier struct {
	bot      *pkgTelegram.Bot
	fallback router.Notifier
}

var _ router.Notifier = (*Notifier)(nil)

// NewNotifier creates a Notifier.
func NewNotifier(bot *pkgTelegram.Bot, fallback router.Notifier) *Notifier {
	return &Notifier{bot: bot, fallback: fallback}
}

func (n *Notifier) Notify(ctx context.Context, conversationID, text string) error {
	chatID, err := ParseConversationID(conversationID)
	if err != nil {
		if n.fallback != nil {
			return n.fallback.Notify(ctx, conversationID, text)
		}
		return nil
	}
	return n.bot.SendMessage(ctx, chatID, text)
}
