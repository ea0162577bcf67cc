package testing

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const pgImage = "postgres:17.5"

type PGContainer struct {
	Container  testcontainers.Container
	ConnString string
}

type PGConfig struct {
	Database string
	Username string
	Password string
}

type PGOption func(*PGConfig)

func WithDatabase(name string) PGOption {
	return func(c *PGConfig) {
		c.Database = name
	}
}

func defaultPGConfig() PGConfig {
	return PGConfig{
		Database: "users_test_db",
		Username: "test",
		Password: "test",
	}
}

// NewPGContainerWithCleanup starts a migrated Postgres container for t and
// skips t when no container provider is available.
func NewPGContainerWithCleanup(ctx context.Context, t *testing.T, opts ...PGOption) *PGContainer {
	t.Helper()
	skipWithoutDocker(t)

	cfg := defaultPGConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	container, err := createPGContainer(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to create postgres container: %v", err)
	}

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container.Container); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	return container
}

func skipWithoutDocker(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
}

func defaultMigrationsDir() string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(b), "..", "..", "db", "migrations")
}

// MigrationFiles lists the *.up.sql files of dir in apply order.
// An empty dir means the repository's db/migrations.
func MigrationFiles(dir string) ([]string, error) {
	if dir == "" {
		dir = defaultMigrationsDir()
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to find migration files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no up migrations in %s", dir)
	}
	sort.Strings(files)
	return files, nil
}

func createPGContainer(ctx context.Context, cfg PGConfig) (*PGContainer, error) {
	migrations, err := MigrationFiles("")
	if err != nil {
		return nil, err
	}

	// The entrypoint runs init scripts in name order, matching MigrationFiles.
	pgContainer, err := postgres.Run(ctx,
		pgImage,
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		postgres.WithInitScripts(migrations...),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &PGContainer{
		Container:  pgContainer,
		ConnString: connStr,
	}, nil
}
