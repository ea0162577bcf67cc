package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/user-directory/internal/domain"
	"github.com/DjordjeVuckovic/user-directory/internal/storage"
)

const DefaultBatchSize = 500

type Seeder struct {
	storer    storage.UserStorer
	batchSize int
}

func NewSeeder(storer storage.UserStorer, batchSize int) *Seeder {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Seeder{storer: storer, batchSize: batchSize}
}

// Run saves users in batches and stops at the first failing batch.
func (s *Seeder) Run(ctx context.Context, users []domain.User) error {
	total := 0
	for start := 0; start < len(users); start += s.batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(start+s.batchSize, len(users))
		if err := s.storer.SaveBulk(ctx, users[start:end]); err != nil {
			return fmt.Errorf("failed to save users %d-%d: %w", start, end, err)
		}
		total += end - start
		slog.Debug("Saved batch", "from", start, "to", end)
	}

	slog.Info("Seeding completed", "users", total)
	return nil
}
