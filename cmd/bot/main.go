package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"

	hotelbot "github.com/easy-travel/hotelbot"
	"github.com/easy-travel/hotelbot/internal/config"
	"github.com/easy-travel/hotelbot/internal/handler"
	"github.com/easy-travel/hotelbot/internal/middleware"
	"github.com/easy-travel/hotelbot/internal/repository"
	"github.com/easy-travel/hotelbot/internal/service"
	"github.com/easy-travel/hotelbot/internal/session"
	"github.com/easy-travel/hotelbot/internal/telegram"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Local development convenience; variables may come from the environment
	// directly.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(hotelbot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	store := repository.NewPostgresStore(pool)

	// Initialize services
	userService := service.NewUserService(store)
	hotelsAPI := service.NewRapidAPIService(cfg.RapidAPIKey, cfg.RapidAPIHost)
	searchService := service.NewSearchService(hotelsAPI, store)
	historyService := service.NewHistoryService(store)
	sessions := session.NewManager()

	// Handler pointer for use in default handler closure
	var h *handler.Handler

	// Create bot. Handlers run sequentially: per-conversation state is
	// mutated by one update at a time.
	opts := []bot.Option{
		bot.WithNotAsyncHandlers(),
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.UserLoader(userService),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil {
				return
			}
			h.HandleDefault(ctx, b, update)
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	if cfg.DropPendingUpdates {
		b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true})
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	notifier := telegram.NewNotifier(b, cfg.AdminIDs)

	// Initialize handler
	h = handler.New(handler.Deps{
		Bot:      b,
		Cfg:      cfg,
		Users:    userService,
		Search:   searchService,
		History:  historyService,
		Store:    store,
		Sessions: sessions,
	})

	// Register all handlers
	h.Register()

	// Publish the command menu
	b.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: []models.BotCommand{
			{Command: "start", Description: "Подключиться к боту"},
			{Command: "lowprice", Description: "Топ самых дешёвых отелей"},
			{Command: "bestdeal", Description: "Отели по цене и расположению от центра"},
			{Command: "mycity", Description: "Отели в моём городе"},
			{Command: "history", Description: "История запросов"},
			{Command: "help", Description: "Помощь по командам"},
			{Command: "hello_world", Description: "Поздороваться"},
		},
	})

	// Expired area-callback cleanup goroutine
	go func() {
		ticker := time.NewTicker(config.CallbackCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := store.DeleteExpiredCallbacks(context.Background(), time.Now().Add(-config.CallbackTTL))
				if err != nil {
					slog.Error("cleanup expired callbacks", "error", err)
				} else if deleted > 0 {
					slog.Info("expired callbacks removed", "count", deleted)
				}
			}
		}
	}()

	// Start bot
	slog.Info("starting bot", "username", me.Username, "id", me.ID)
	notifier.Notify("Бот запущен ✅")
	b.Start(ctx)

	// Graceful shutdown
	notifier.Notify("Бот остановлен ⛔")
	slog.Info("bot stopped gracefully")
}
