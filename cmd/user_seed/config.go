package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/user-directory/internal/seed"
	"github.com/DjordjeVuckovic/user-directory/internal/storage/factory"
	"github.com/DjordjeVuckovic/user-directory/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type UserSeedConfig struct {
	SeedFile  string
	BatchSize int
	factory.StorageConfig
}

func (as *AppConfig) Load() (*UserSeedConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/user_seed/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	batchSize, err := strconv.Atoi(os.Getenv("SEED_BATCH_SIZE"))
	if err != nil {
		batchSize = seed.DefaultBatchSize
	}

	return &UserSeedConfig{
		SeedFile:      env.StringOr("SEED_FILE", "db/seed/users.yaml"),
		BatchSize:     batchSize,
		StorageConfig: *storageCfg,
	}, nil
}
