package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aidarbek/three-clues-bot/internal/config"
	"github.com/aidarbek/three-clues-bot/internal/delivery/telegram"
	"github.com/aidarbek/three-clues-bot/internal/domain/entities"
	"github.com/aidarbek/three-clues-bot/internal/logger"
	"github.com/aidarbek/three-clues-bot/internal/repository"
	"github.com/aidarbek/three-clues-bot/internal/service"
	"github.com/aidarbek/three-clues-bot/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = zl.Sync()
	}()

	if err := entities.ValidateConfigs(); err != nil {
		zl.Fatal("invalid category configuration", zap.Error(err))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	dataset, err := repository.NewDatasetRepository(cfg.DatasetPath, rng)
	if err != nil {
		zl.Fatal("failed to load dataset",
			zap.String("path", cfg.DatasetPath),
			zap.Error(err),
		)
	}
	zl.Info("dataset loaded", zap.String("path", cfg.DatasetPath))

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot api", zap.Error(err))
	}
	zl.Info("authorized", zap.String("account", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start the bot",
		},
		{
			Command:     "play",
			Description: "Pick a category and play a round",
		},
		{
			Command:     "score",
			Description: "Show score and streak",
		},
		{
			Command:     "help",
			Description: "How to play",
		},
	}

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	game := service.NewGameService(dataset, service.NewOptionGenerator(rng), zl)
	sessions := storage.NewSessionStorage()

	handler := telegram.NewHandler(bot, zl, game, sessions)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
