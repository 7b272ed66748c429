package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mccrew-ai/config"
	crewHTTP "mccrew-ai/internal/crew/delivery/http"
	gatewayHTTP "mccrew-ai/internal/gateway/delivery/http"
	"mccrew-ai/internal/middleware"
	chatHTTP "mccrew-ai/internal/router/delivery/http"
	tgDelivery "mccrew-ai/internal/router/delivery/telegram"
	"mccrew-ai/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	crewHandler     crewHTTP.Handler
	gatewayHandler  gatewayHTTP.Handler
	chatHandler     chatHTTP.Handler
	telegramHandler tgDelivery.Handler

	aiConfigured func() bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	CrewHandler     crewHTTP.Handler
	GatewayHandler  gatewayHTTP.Handler
	ChatHandler     chatHTTP.Handler
	TelegramHandler tgDelivery.Handler

	// AIConfigured reports whether a completion provider is set up. Used by /ready.
	AIConfigured func() bool
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		crewHandler:     cfg.CrewHandler,
		gatewayHandler:  cfg.GatewayHandler,
		chatHandler:     cfg.ChatHandler,
		telegramHandler: cfg.TelegramHandler,
		aiConfigured:    cfg.AIConfigured,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, cfg.RateLimit)
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.gatewayHandler == nil && srv.chatHandler == nil {
		return errors.New("gateway or chat handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
