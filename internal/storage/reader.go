package storage

import (
	"context"

	"github.com/DjordjeVuckovic/user-directory/internal/domain"
)

// UserReader is the read side of the user store.
// Count and Fetch must apply the same filter semantics: a case-sensitive
// substring match on the user name, with the term treated as literal text.
type UserReader interface {
	// Count returns the number of users matching filter.
	Count(ctx context.Context, filter domain.UserFilter) (int64, error)
	// Fetch returns at most limit matching users ordered by id, skipping offset.
	Fetch(ctx context.Context, filter domain.UserFilter, limit, offset int) ([]domain.User, error)
}

// SnapshotReader is implemented by backends able to serve several reads
// from one consistent snapshot.
type SnapshotReader interface {
	// WithSnapshot calls fn with a reader bound to a single read snapshot.
	WithSnapshot(ctx context.Context, fn func(r UserReader) error) error
}
