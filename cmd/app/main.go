package main

import (
	"context"
	"os"
	"time"

	"catanboard/internal/app"
	"catanboard/internal/delivery/discord"
	"catanboard/internal/delivery/telegram"
	"catanboard/internal/delivery/web"
	"catanboard/pkg/config"
	"catanboard/pkg/logger"
	service "catanboard/pkg/services"

	"github.com/joho/godotenv"
)

const initialLoadTimeout = 30 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.ReadEnvConfig(&cfg); err != nil {
		panic(err)
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stdout})

	services, err := app.NewServices(&cfg, log)
	if err != nil {
		log.Error("failed to init services", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loadCtx, loadCancel := context.WithTimeout(ctx, initialLoadTimeout)
	if err := services.Leaderboard.Load(loadCtx); err != nil {
		log.Error("initial load failed, serving until a reload succeeds", "error", err)
	}
	loadCancel()

	manager := service.NewManager(log)
	manager.AddService(web.NewServer(&cfg, services, log))

	if cfg.DiscordToken != "" {
		bot, err := discord.NewBot(&cfg, services, log)
		if err != nil {
			log.Error("failed to init discord bot", "error", err)
			os.Exit(1)
		}
		manager.AddService(bot)
	}

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramAdminIDs, cfg.Sort(), services, log)
		if err != nil {
			log.Error("failed to init telegram bot", "error", err)
			os.Exit(1)
		}
		manager.AddService(bot)
	}

	if err := manager.Run(ctx); err != nil {
		log.Error("service manager stopped", "error", err)
		os.Exit(1)
	}
	log.Info("stopped")
}
