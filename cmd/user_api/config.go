package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/user-directory/internal/directory"
	"github.com/DjordjeVuckovic/user-directory/internal/server"
	"github.com/DjordjeVuckovic/user-directory/internal/storage/factory"
	"github.com/DjordjeVuckovic/user-directory/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type UserApiConfig struct {
	Server        *server.Config
	StorageConfig factory.StorageConfig
	SnapshotReads bool
	// BasePath is where the HTML directory page is served.
	BasePath string
	// SeedFile, when set, is loaded into the backend before serving.
	SeedFile string
}

func (as *AppConfig) Load() (*UserApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/user_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration", "error", err)
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &UserApiConfig{
		Server:        serverCfg,
		StorageConfig: *storageCfg,
		SnapshotReads: env.BoolOr("SNAPSHOT_READS", false),
		BasePath:      env.StringOr("BASE_PATH", directory.DefaultBasePath),
		SeedFile:      os.Getenv("SEED_FILE"),
	}, nil
}
