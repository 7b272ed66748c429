package telegram

import (
	"github.com/gin-gonic/gin"

	"mccrew-ai/internal/router"
	pkgLog "mccrew-ai/pkg/log"
	pkgTelegram "mccrew-ai/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	router router.Router
	bot    *pkgTelegram.Bot
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, r router.Router, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:      l,
		router: r,
		bot:    bot,
	}
}
