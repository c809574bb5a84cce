package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"servismotor-bot/internal/bot"
	"servismotor-bot/internal/bot/state_manager"
	"servismotor-bot/internal/catalog"
	"servismotor-bot/internal/config"
	"servismotor-bot/internal/storage"
	redisstorage "servismotor-bot/internal/storage/redis"
	"servismotor-bot/pkg/logger"
	"servismotor-bot/pkg/redis"
)

// ENTRY POINT

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	sessionStorage, closeSessions, err := newSessionStorage(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to init session storage", zap.Error(err))
	}
	defer closeSessions()

	serviceCatalog, err := loadCatalog(ctx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to load catalog", zap.Error(err))
	}
	zapLogger.Info("Catalog loaded",
		zap.Int("services", len(serviceCatalog.Services())),
		zap.Int("difficulty_levels", len(serviceCatalog.DifficultyLevels())))

	tgBot, err := bot.New(
		cfg.TelegramToken,
		cfg.TelegramDebug,
		state_manager.New(sessionStorage, serviceCatalog),
		serviceCatalog,
		cfg.ReportsDir,
		zapLogger,
	)
	if err != nil {
		zapLogger.Fatal("Failed to create bot", zap.Error(err))
	}

	if err := tgBot.Start(ctx); err != nil {
		zapLogger.Fatal("Bot stopped with error", zap.Error(err))
	}

	zapLogger.Info("Bot shutdown gracefully")
}

func newSessionStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (state_manager.Storage, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR is empty, keeping sessions in memory")
		return state_manager.NewMemoryStorage(cfg.SessionTTL), func() {}, nil
	}

	client := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
	if err := client.WaitReady(ctx, time.Minute, logger); err != nil {
		client.Close()
		return nil, nil, err
	}
	return redisstorage.New(client), client.Close, nil
}

// loadCatalog reads the catalog from PostgreSQL when a database is configured
// and falls back to the built-in one otherwise.
func loadCatalog(ctx context.Context, cfg config.Database, logger *zap.Logger) (*catalog.Catalog, error) {
	if !cfg.Enabled() {
		return catalog.Default(), nil
	}

	pgStorage, err := storage.NewPostgresStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	defer pgStorage.Close()

	if err := pgStorage.RunMigrations(ctx); err != nil {
		return nil, err
	}
	if err := pgStorage.SeedCatalog(ctx, catalog.Default()); err != nil {
		return nil, err
	}
	return pgStorage.LoadCatalog(ctx)
}
