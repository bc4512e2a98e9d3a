// Package app wires configuration, storage, services, and the HTTP transport
// together and owns the server lifecycle.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/markstash/backend/internal/adapter/postgres"
	bookmarkrepo "github.com/markstash/backend/internal/adapter/postgres/bookmark"
	folderrepo "github.com/markstash/backend/internal/adapter/postgres/folder"
	settingsrepo "github.com/markstash/backend/internal/adapter/postgres/settings"
	tagrepo "github.com/markstash/backend/internal/adapter/postgres/tag"
	"github.com/markstash/backend/internal/adapter/provider/claude"
	"github.com/markstash/backend/internal/auth"
	"github.com/markstash/backend/internal/config"
	"github.com/markstash/backend/internal/service/bookmarks"
	"github.com/markstash/backend/internal/service/categorize"
	"github.com/markstash/backend/internal/service/folders"
	"github.com/markstash/backend/internal/service/settings"
	"github.com/markstash/backend/internal/service/tags"
	"github.com/markstash/backend/internal/transport/rest"
	"github.com/markstash/backend/migrations"
)

// Run starts the application and blocks until ctx is cancelled or the HTTP
// server fails. On cancellation the server is drained within the configured
// shutdown timeout before Run returns.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	bookmarkRepo := bookmarkrepo.New(pool)
	tagRepo := tagrepo.New(pool)
	folderRepo := folderrepo.New(pool)
	settingsRepo := settingsrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	settingsSvc := settings.NewService(logger, settingsRepo)
	resolver := tags.NewResolver(logger, tagRepo)

	// A nil fourth argument disables categorization globally; keep it an
	// untyped nil so the service's interface check works.
	var categorizeSvc *categorize.Service
	if cfg.AI.APIKey == "" {
		logger.Info("AI categorization disabled: no API key configured")
		categorizeSvc = categorize.NewService(logger, settingsSvc, folderRepo, nil)
	} else {
		categorizeSvc = categorize.NewService(logger, settingsSvc, folderRepo, claude.New(cfg.AI))
	}

	bookmarksSvc := bookmarks.NewService(logger, cfg.Bookmarks,
		bookmarkRepo, tagRepo, folderRepo, resolver, categorizeSvc, txManager)
	foldersSvc := folders.NewService(logger, folderRepo)

	router := rest.NewRouter(logger, cfg.CORS, auth.NewValidator(cfg.Auth), rest.Handlers{
		Bookmarks: rest.NewBookmarkHandler(bookmarksSvc, logger),
		Settings:  rest.NewSettingsHandler(settingsSvc, logger),
		Folders:   rest.NewFolderHandler(foldersSvc, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// migrate applies the embedded goose migrations. Goose requires database/sql,
// so this opens its own short-lived connection rather than reusing the pool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
