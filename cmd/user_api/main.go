// Package main User Directory API
// @title User Directory API
// @version 1.0
// @description Searchable, paginated directory of users
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/user-directory/docs"
	"github.com/DjordjeVuckovic/user-directory/internal/apperr"
	"github.com/DjordjeVuckovic/user-directory/internal/directory"
	"github.com/DjordjeVuckovic/user-directory/internal/router"
	"github.com/DjordjeVuckovic/user-directory/internal/seed"
	"github.com/DjordjeVuckovic/user-directory/internal/server"
	"github.com/DjordjeVuckovic/user-directory/internal/storage"
	"github.com/DjordjeVuckovic/user-directory/internal/storage/factory"
	"github.com/DjordjeVuckovic/user-directory/internal/web"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	backend, err := factory.New(context.Background(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err, "type", cfg.StorageConfig.Type)
		os.Exit(1)
	}
	defer backend.Close()

	templates, err := web.NewTemplates()
	if err != nil {
		slog.Error("Failed to parse templates", "error", err)
		os.Exit(1)
	}

	s := server.New(cfg.Server, backend.Health).
		SetupMiddlewares().
		SetupErrorHandler(apperr.WithHomePath(cfg.BasePath)).
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")
	s.Echo.Renderer = templates

	// Seeding stops when the server context is cancelled by an interrupt.
	if cfg.SeedFile != "" {
		if err := seedBackend(s.Context(), backend.Storer, cfg.SeedFile); err != nil {
			slog.Error("Failed to seed storage backend", "error", err, "file", cfg.SeedFile)
			os.Exit(1)
		}
	}

	svc := directory.NewService(backend.Reader, directory.WithSnapshotReads(cfg.SnapshotReads))
	router.NewUserRouter(s.Echo, svc, router.WithBasePath(cfg.BasePath)).Bind()

	slog.Info("User directory ready", "storage", cfg.StorageConfig.Type, "snapshotReads", cfg.SnapshotReads, "basePath", cfg.BasePath)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func seedBackend(ctx context.Context, storer storage.UserStorer, path string) error {
	f, err := seed.LoadFile(path)
	if err != nil {
		return err
	}
	return seed.NewSeeder(storer, seed.DefaultBatchSize).Run(ctx, f.DomainUsers())
}
