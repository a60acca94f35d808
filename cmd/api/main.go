package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"git-telegram-bridge/config"
	_ "git-telegram-bridge/docs" // Swagger docs
	"git-telegram-bridge/internal/httpserver"
	"git-telegram-bridge/internal/onboarding"
	tgDelivery "git-telegram-bridge/internal/onboarding/delivery/telegram"
	onboardingUC "git-telegram-bridge/internal/onboarding/usecase"
	registrationHTTP "git-telegram-bridge/internal/registration/delivery/http"
	registrationRepo "git-telegram-bridge/internal/registration/repository/postgre"
	registrationUC "git-telegram-bridge/internal/registration/usecase"
	"git-telegram-bridge/internal/webhook"
	"git-telegram-bridge/pkg/github"
	"git-telegram-bridge/pkg/log"
	"git-telegram-bridge/pkg/telegram"
)

// @title       Git Telegram Bridge API
// @description Relays GitHub repository events to Telegram chats, with conversational onboarding and HMAC-signed webhook admission.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
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

	logger.Info(ctx, "Starting Git Telegram Bridge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if cfg.Telegram.BotToken == "" {
		logger.Error(ctx, "TELEGRAM_BOT_TOKEN is required")
		return
	}
	if cfg.Database.URL == "" {
		logger.Error(ctx, "DATABASE_URL is required")
		return
	}

	// 3. Registration store
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		logger.Errorf(ctx, "Failed to ping database: %v", err)
		return
	}

	repo := registrationRepo.New(db, logger)

	// 4. Telegram Bot client
	bot := telegram.NewBot(cfg.Telegram.BotToken)

	// 5. GitHub existence probe (optional)
	var prober onboarding.RepoProber
	if cfg.GitHub.ProbeEnabled {
		prober = github.NewClient(cfg.GitHub.APIBase, cfg.GitHub.Token)
		logger.Info(ctx, "GitHub repository existence probe enabled")
	}

	// Public base URL: explicit config or auto-detected ngrok tunnel
	baseURL := cfg.WebhookBaseURL
	if baseURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			baseURL = ngrokURL
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", baseURL)
		}
	}

	// 6. Onboarding conversation
	convStore := onboarding.NewStore(cfg.Onboarding.MaxConversations, cfg.Onboarding.TTL)
	onbUC := onboardingUC.New(logger, convStore, repo, bot, prober, baseURL)
	telegramHandler := tgDelivery.New(logger, onbUC)

	// 7. Direct setup API
	regUC := registrationUC.New(logger, repo, bot)
	setupHandler := registrationHTTP.New(logger, regUC)

	// 8. GitHub event admission pipeline
	gitHubHandler := webhook.NewHandler(repo, bot, logger)

	// 9. Register the Telegram webhook
	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" && baseURL != "" {
		webhookURL = baseURL + "/webhook/telegram"
	}
	if webhookURL != "" {
		if whErr := bot.SetWebhook(webhookURL); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	}

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:               logger,
		Port:                 cfg.HTTPServer.Port,
		Mode:                 cfg.HTTPServer.Mode,
		Environment:          cfg.Environment.Name,
		TelegramHandler:      telegramHandler,
		GitHubWebhookHandler: gitHubHandler,
		SetupHandler:         setupHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
