package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/user-directory/internal/seed"
	"github.com/DjordjeVuckovic/user-directory/internal/storage"
	"github.com/DjordjeVuckovic/user-directory/internal/storage/factory"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if cfg.StorageConfig.Type == storage.InMem {
		slog.Warn("Seeding the in-memory backend has no lasting effect, use SEED_FILE on user_api instead")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fixture, err := seed.LoadFile(cfg.SeedFile)
	if err != nil {
		slog.Error("failed to load seed fixture", "error", err, "file", cfg.SeedFile)
		os.Exit(1)
	}

	slog.Info("Creating backend", "storageType", cfg.StorageConfig.Type)
	backend, err := factory.New(ctx, cfg.StorageConfig)
	if err != nil {
		slog.Error("failed to create storage backend", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	if err := seed.NewSeeder(backend.Storer, cfg.BatchSize).Run(ctx, fixture.DomainUsers()); err != nil {
		slog.Error("failed to seed users", "error", err)
		backend.Close()
		os.Exit(1)
	}
}
