package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/user-directory/internal/domain"
	"github.com/DjordjeVuckovic/user-directory/internal/storage"
)

// Store keeps users in memory ordered by id.
type Store struct {
	storageLock sync.RWMutex
	users       []domain.User
	nextID      int64
}

func NewStore(users ...domain.User) *Store {
	s := &Store{nextID: 1}
	_ = s.SaveBulk(context.Background(), users)
	return s
}

func (s *Store) SaveBulk(ctx context.Context, users []domain.User) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, u := range users {
		if u.ID == 0 {
			u.ID = s.nextID
		}
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
		s.users = append(s.users, u)
	}
	sort.SliceStable(s.users, func(i, j int) bool {
		return s.users[i].ID < s.users[j].ID
	})

	slog.Info("Saved users to in-memory storage", "count", len(users), "total", len(s.users))
	return nil
}

func (s *Store) Count(ctx context.Context, filter domain.UserFilter) (int64, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	return snapshot(s.users).Count(ctx, filter)
}

func (s *Store) Fetch(ctx context.Context, filter domain.UserFilter, limit, offset int) ([]domain.User, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	return snapshot(s.users).Fetch(ctx, filter, limit, offset)
}

// WithSnapshot runs fn against a copy of the current users.
func (s *Store) WithSnapshot(ctx context.Context, fn func(r storage.UserReader) error) error {
	s.storageLock.RLock()
	view := make(snapshot, len(s.users))
	copy(view, s.users)
	s.storageLock.RUnlock()

	return fn(view)
}

func (s *Store) Healthy(ctx context.Context) bool {
	return true
}

type snapshot []domain.User

func (v snapshot) Count(ctx context.Context, filter domain.UserFilter) (int64, error) {
	var n int64
	for _, u := range v {
		if matches(u, filter) {
			n++
		}
	}
	return n, nil
}

func (v snapshot) Fetch(ctx context.Context, filter domain.UserFilter, limit, offset int) ([]domain.User, error) {
	result := make([]domain.User, 0, limit)
	skipped := 0
	for _, u := range v {
		if len(result) >= limit {
			break
		}
		if !matches(u, filter) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		result = append(result, u)
	}
	return result, nil
}

func matches(u domain.User, filter domain.UserFilter) bool {
	return strings.Contains(u.Name, filter.NameContains)
}
