package httpserver

import (
	"context"

	crewHTTP "mccrew-ai/internal/crew/delivery/http"
	gatewayHTTP "mccrew-ai/internal/gateway/delivery/http"
	chatHTTP "mccrew-ai/internal/router/delivery/http"
	tgDelivery "mccrew-ai/internal/router/delivery/telegram"
)

// registerDomainRoutes registers all domain routes. Missing handlers are skipped.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	// Completion gateway: the browser widget posts here directly.
	if srv.gatewayHandler != nil {
		limited := srv.gin.Group("", srv.mw.RateLimit())
		gatewayHTTP.RegisterRoutes(limited, srv.gatewayHandler)
		srv.l.Infof(ctx, "Gateway routes registered at %s and %s", gatewayHTTP.NetlifyAskPath, gatewayHTTP.APIAskPath)
	}

	api := srv.gin.Group("/api/v1")

	if srv.chatHandler != nil {
		chatHTTP.RegisterRoutes(api.Group("", srv.mw.RateLimit()), srv.chatHandler)
		srv.l.Infof(ctx, "Chat route registered at POST /api/v1/chat")
	}

	if srv.crewHandler != nil {
		crewHTTP.RegisterRoutes(api, srv.crewHandler)
		srv.l.Infof(ctx, "Crew admin routes registered under /api/v1")
	}

	if srv.telegramHandler != nil {
		srv.gin.POST(tgDelivery.WebhookPath, srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST %s", tgDelivery.WebhookPath)
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
