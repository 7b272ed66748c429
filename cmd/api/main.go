package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mccrew-ai/config"
	_ "mccrew-ai/docs" // Swagger docs
	crewHTTP "mccrew-ai/internal/crew/delivery/http"
	"mccrew-ai/internal/crew/repository"
	crewMemory "mccrew-ai/internal/crew/repository/memory"
	"mccrew-ai/internal/crew/repository/sqlstore"
	crewUC "mccrew-ai/internal/crew/usecase"
	gatewayHTTP "mccrew-ai/internal/gateway/delivery/http"
	gatewayUC "mccrew-ai/internal/gateway/usecase"
	"mccrew-ai/internal/httpserver"
	"mccrew-ai/internal/knowledge"
	"mccrew-ai/internal/router"
	chatHTTP "mccrew-ai/internal/router/delivery/http"
	tgDelivery "mccrew-ai/internal/router/delivery/telegram"
	"mccrew-ai/internal/session"
	sessionMemory "mccrew-ai/internal/session/memory"
	sessionRedis "mccrew-ai/internal/session/redis"
	"mccrew-ai/pkg/datemath"
	"mccrew-ai/pkg/llmprovider"
	"mccrew-ai/pkg/log"
	"mccrew-ai/pkg/telegram"
)

// @title       McCrew Assistant API
// @description Crew chat assistant: topic routing, shift and pay lookups, and a single-call completion gateway.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration (.env is optional)
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting McCrew Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Crew store
	dates, err := datemath.NewParser(cfg.Store.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Store.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	repo, err := openCrewRepository(cfg.Store, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open crew store: ", err)
		return
	}
	crew := crewUC.New(logger, repo, dates)
	if cfg.Store.SeedDemo {
		if err := crew.SeedDemo(ctx); err != nil {
			logger.Warnf(ctx, "Failed to seed demo crew: %v", err)
		}
	}

	// 4. Sessions
	sessions, closeSessions := openSessionStore(ctx, cfg.Session, logger)
	defer closeSessions()

	// 5. Completion gateway
	provider, err := llmprovider.InitializeProvider(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "Completion provider not configured: %v", err)
		provider = nil
	} else {
		logger.Infof(ctx, "Completion provider: %s (%s)", provider.Name(), provider.Model())
	}
	requestTimeout, _ := time.ParseDuration(cfg.LLM.RequestTimeout)
	llm := llmprovider.NewManager(provider, &llmprovider.Config{RequestTimeout: requestTimeout}, logger)
	if provider == nil {
		// Keys are re-read per request until one shows up.
		llm.SetResolver(func() (llmprovider.Provider, error) {
			live := cfg.LLM.WithCurrentKeys()
			return llmprovider.InitializeProvider(&live)
		})
	}

	gateway := gatewayUC.New(logger, llm, gatewayUC.Options{
		Persona:     cfg.Gateway.Persona,
		Knowledge:   cfg.Gateway.Knowledge,
		Temperature: cfg.Gateway.Temperature,
		MaxTokens:   cfg.Gateway.MaxTokens,
		TopicGuard:  cfg.Gateway.TopicGuard,
	})
	// The chat router can act on returned actions, so its gateway asks for them.
	chatGateway := gatewayUC.New(logger, llm, gatewayUC.Options{
		Persona:     cfg.Gateway.Persona,
		Knowledge:   cfg.Gateway.Knowledge,
		Temperature: cfg.Gateway.Temperature,
		MaxTokens:   cfg.Gateway.MaxTokens,
		TopicGuard:  cfg.Gateway.TopicGuard,
		ActionHint:  true,
	})

	// 6. Telegram (optional)
	var (
		bot             *telegram.Bot
		notifier        router.Notifier
		telegramHandler tgDelivery.Handler
	)
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)
		notifier = tgDelivery.NewNotifier(bot, nil)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. Topic router
	topicRouter := router.New(logger, crew, knowledge.New(), chatGateway, sessions, notifier, router.Options{
		StoreName:     cfg.Gateway.StoreName,
		Persona:       cfg.Gateway.Persona,
		SendCatalogue: cfg.Gateway.SendCatalogue,
		Location:      dates.Location(),
	})
	defer topicRouter.Close()

	if bot != nil {
		telegramHandler = tgDelivery.New(logger, topicRouter, bot)
		registerTelegramWebhook(ctx, bot, cfg.Telegram.WebhookURL, logger)
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimit:       cfg.RateLimit,
		CrewHandler:     crewHTTP.New(logger, crew),
		GatewayHandler:  gatewayHTTP.New(logger, gateway),
		ChatHandler:     chatHTTP.New(logger, topicRouter),
		TelegramHandler: telegramHandler,
		AIConfigured:    llm.Configured,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func openCrewRepository(cfg config.StoreConfig, logger log.Logger) (repository.Repository, error) {
	switch cfg.Driver {
	case "", "memory":
		return crewMemory.New(), nil
	case sqlstore.DriverSQLite, sqlstore.DriverPostgres:
		db, err := sqlstore.Open(sqlstore.Config{Driver: cfg.Driver, DSN: cfg.DSN})
		if err != nil {
			return nil, err
		}
		return sqlstore.New(db, logger), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// openSessionStore falls back to memory when Redis is unreachable.
func openSessionStore(ctx context.Context, cfg config.SessionConfig, logger log.Logger) (session.Store, func()) {
	if cfg.Backend == "redis" {
		rdb := sessionRedis.NewClient(sessionRedis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf(ctx, "Redis session store unavailable at %s, using memory: %v", cfg.RedisAddr, err)
			_ = rdb.Close()
		} else {
			logger.Infof(ctx, "Session store: redis %s", cfg.RedisAddr)
			return sessionRedis.New(logger, rdb, cfg.TTL), func() { _ = rdb.Close() }
		}
	}
	return sessionMemory.New(cfg.Size, cfg.TTL), func() {}
}

// registerTelegramWebhook uses the configured URL or an ngrok tunnel if one is running.
func registerTelegramWebhook(ctx context.Context, bot *telegram.Bot, webhookURL string, logger log.Logger) {
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, defaultNgrokAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + tgDelivery.WebhookPath
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
