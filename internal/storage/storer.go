package storage

import (
	"context"

	"github.com/DjordjeVuckovic/user-directory/internal/domain"
)

// UserStorer bulk loads users. Users with a zero ID get one assigned by the backend.
type UserStorer interface {
	SaveBulk(ctx context.Context, users []domain.User) error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
