package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/user-directory/internal/domain"
	"github.com/jackc/pgx/v5"
)

type Storer struct {
	pool *ConnectionPool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	return &Storer{pool: pool}, nil
}

// SaveBulk copies users into the users table. Users without an id take one
// from the id sequence; explicit ids advance the sequence past them.
func (s *Storer) SaveBulk(ctx context.Context, users []domain.User) error {
	if len(users) == 0 {
		return nil
	}

	tx, err := s.pool.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var withID, withoutID [][]any
	for _, u := range users {
		if u.ID == 0 {
			withoutID = append(withoutID, []any{u.Name, u.Email})
			continue
		}
		withID = append(withID, []any{u.ID, u.Name, u.Email})
	}

	if len(withID) > 0 {
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"users"}, []string{"id", "name", "email"}, pgx.CopyFromRows(withID)); err != nil {
			return fmt.Errorf("failed to bulk insert users: %w", err)
		}
		if _, err := tx.Exec(ctx, `SELECT setval(pg_get_serial_sequence('users', 'id'), (SELECT max(id) FROM users))`); err != nil {
			return fmt.Errorf("failed to advance user id sequence: %w", err)
		}
	}

	if len(withoutID) > 0 {
		if _, err := tx.CopyFrom(ctx, pgx.Identifier{"users"}, []string{"name", "email"}, pgx.CopyFromRows(withoutID)); err != nil {
			return fmt.Errorf("failed to bulk insert users: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit users: %w", err)
	}

	slog.Info("Bulk insert completed", "total", len(users))
	return nil
}
