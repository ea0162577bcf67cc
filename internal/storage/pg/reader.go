package pg

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/user-directory/internal/domain"
	"github.com/DjordjeVuckovic/user-directory/internal/storage"
	"github.com/jackc/pgx/v5"
)

const (
	countUsersSQL = `
		SELECT count(*)
		FROM users
		WHERE name LIKE '%' || $1 || '%' ESCAPE '\'
	`
	fetchUsersSQL = `
		SELECT id, name, email
		FROM users
		WHERE name LIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Reader struct {
	pool *ConnectionPool
}

func NewReader(pool *ConnectionPool) (*Reader, error) {
	return &Reader{pool: pool}, nil
}

func (r *Reader) Count(ctx context.Context, filter domain.UserFilter) (int64, error) {
	return count(ctx, r.pool.conn, filter)
}

func (r *Reader) Fetch(ctx context.Context, filter domain.UserFilter, limit, offset int) ([]domain.User, error) {
	return fetch(ctx, r.pool.conn, filter, limit, offset)
}

// WithSnapshot runs fn inside a read-only repeatable read transaction so
// every query fn issues sees the same data.
func (r *Reader) WithSnapshot(ctx context.Context, fn func(r storage.UserReader) error) error {
	tx, err := r.pool.conn.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(txReader{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type txReader struct {
	tx pgx.Tx
}

func (r txReader) Count(ctx context.Context, filter domain.UserFilter) (int64, error) {
	return count(ctx, r.tx, filter)
}

func (r txReader) Fetch(ctx context.Context, filter domain.UserFilter, limit, offset int) ([]domain.User, error) {
	return fetch(ctx, r.tx, filter, limit, offset)
}

func count(ctx context.Context, q querier, filter domain.UserFilter) (int64, error) {
	var total int64
	if err := q.QueryRow(ctx, countUsersSQL, escapeLike(filter.NameContains)).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}
	return total, nil
}

func fetch(ctx context.Context, q querier, filter domain.UserFilter, limit, offset int) ([]domain.User, error) {
	slog.Debug("Executing pg user fetch", "search", filter.NameContains, "limit", limit, "offset", offset)

	rows, err := q.Query(ctx, fetchUsersSQL, escapeLike(filter.NameContains), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute fetch query: %w", err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		var u domain.User
		err := row.Scan(&u.ID, &u.Name, &u.Email)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}

	return users, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern using '\' as escape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
