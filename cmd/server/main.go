// Package main implements the entry point for the flashcards API server,
// which serves create, read, update and delete operations over a
// collection of question/answer flashcards.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/flashcards-api/internal/config"
	"github.com/phrazzld/flashcards-api/internal/platform/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults to ./config.yaml if present)")
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status, version) and exit")
	flag.Parse()

	if err := run(context.Background(), *configPath, *migrateCmd); err != nil {
		log.Fatalf("flashcards-api: %v", err)
	}
}

// run wires configuration, logging and the application, then either runs a
// migration command or serves HTTP until shutdown.
func run(ctx context.Context, configPath, migrateCmd string) error {
	cfg, appLogger, err := initializeApp(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if migrateCmd != "" {
		return handleMigrations(ctx, cfg, migrateCmd, appLogger)
	}

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp(configPath string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadWithFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver)

	return cfg, appLogger, nil
}
