package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/user-directory/internal/storage"
	"github.com/DjordjeVuckovic/user-directory/internal/storage/es"
	"github.com/DjordjeVuckovic/user-directory/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/user-directory/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/user-directory/pkg/server"
)

// Backend bundles the handles of one configured storage backend.
type Backend struct {
	Reader  storage.UserReader
	Storer  storage.UserStorer
	Health  pkgserver.HealthChecker
	closeFn func()
}

// Close releases the backend's connections.
func (b *Backend) Close() {
	if b.closeFn != nil {
		b.closeFn()
	}
}

// New connects the backend selected by cfg.Type.
func New(ctx context.Context, cfg StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		reader, err := pg.NewReader(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		storer, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{
			Reader:  reader,
			Storer:  storer,
			Health:  pg.NewHealthChecker(pool),
			closeFn: pool.Close,
		}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		storer, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		reader, err := es.NewReader(*cfg.Es)
		if err != nil {
			return nil, err
		}
		health, err := es.NewHealthChecker(*cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Backend{Reader: reader, Storer: storer, Health: health}, nil

	case storage.InMem:
		store := in_mem.NewStore()
		return &Backend{Reader: store, Storer: store, Health: store}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
