package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"catanboard/internal/app"
	"catanboard/internal/application"
	"catanboard/internal/models"
	"catanboard/pkg/config"
	"catanboard/pkg/logger"
)

var (
	envFile  string
	sortFlag string
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "catanboard",
	Short:         "Catan leaderboard tool",
	Long:          "Load leaderboard CSV sources, rank the players and render or export the board.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to an env file, ignored when missing")
	rootCmd.PersistentFlags().StringVar(&sortFlag, "sort", "", "sort mode: wins or winRate (defaults to DEFAULT_SORT)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "time allowed for loading all sources")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(syncCmd)
}

type runtime struct {
	cfg      *config.Config
	services *application.Service
	sortBy   models.SortMode
}

// load reads configuration, builds the services and loads every source.
func load(ctx context.Context) (*runtime, error) {
	_ = godotenv.Load(envFile)

	cfg := &config.Config{}
	if err := config.ReadEnvConfig(cfg); err != nil {
		return nil, err
	}

	sortBy, err := resolveSort(sortFlag, cfg.Sort())
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel, Format: "text", Output: os.Stderr})
	services, err := app.NewServices(cfg, log)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := services.Leaderboard.Load(ctx); err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, services: services, sortBy: sortBy}, nil
}

func resolveSort(flag string, fallback models.SortMode) (models.SortMode, error) {
	if flag == "" {
		return fallback, nil
	}
	mode, ok := models.ParseSortMode(flag)
	if !ok {
		return "", fmt.Errorf("%w: %q", config.ErrUnknownSort, flag)
	}
	return mode, nil
}
