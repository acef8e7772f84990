package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashcards-api/internal/config"
	"github.com/phrazzld/flashcards-api/internal/platform/memory"
	"github.com/phrazzld/flashcards-api/internal/platform/postgres"
	"github.com/phrazzld/flashcards-api/internal/store"
)

// application holds the shared application dependencies so they can be
// injected into handlers and released on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	flashcardStore store.FlashcardStore
}

// newApplication opens the configured flashcard store and returns an
// application ready to serve requests.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	flashcardStore, err := openFlashcardStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Application initialized successfully", "database_driver", cfg.Database.Driver)
	return &application{
		config:         cfg,
		logger:         logger,
		flashcardStore: flashcardStore,
	}, nil
}

// openFlashcardStore builds the store selected by cfg.Driver. For postgres it
// opens the pool and applies pending migrations when AutoMigrate is set.
func openFlashcardStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store.FlashcardStore, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("Using in-memory flashcard store; data is lost on exit")
		return memory.NewFlashcardStore(logger), nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to set up database: %w", err)
		}

		if cfg.AutoMigrate {
			if err := postgres.Migrate(ctx, db, "up", logger); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("failed to apply migrations: %w", err)
			}
		}

		// The store owns the pool from here on and closes it in Close.
		return postgres.NewPostgresFlashcardStore(db, logger), nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.flashcardStore != nil {
		if err := app.flashcardStore.Close(); err != nil {
			app.logger.Error("Error closing flashcard store", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
