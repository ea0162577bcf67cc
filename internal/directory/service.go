package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/user-directory/internal/domain"
	"github.com/DjordjeVuckovic/user-directory/internal/storage"
)

// Listing is one rendered page of the directory.
type Listing struct {
	Users      []domain.User
	Search     string
	Page       int
	TotalPages int
	TotalCount int64
	// From and To are the 1-based positions of the first and last user shown,
	// both zero when nothing matches.
	From     int64
	To       int64
	Previous Link
	Next     Link
}

// State returns the canonical URL state of the listing.
func (l *Listing) State() State {
	return Canonicalize(State{Search: l.Search, Page: l.Page})
}

type Service struct {
	reader        storage.UserReader
	snapshotReads bool
}

type ServiceOption func(*Service)

// WithSnapshotReads makes count and fetch share one read snapshot when the
// reader supports it. Without it the two reads may observe different data.
func WithSnapshotReads(enabled bool) ServiceOption {
	return func(s *Service) {
		s.snapshotReads = enabled
	}
}

func NewService(reader storage.UserReader, opts ...ServiceOption) *Service {
	s := &Service{reader: reader}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List counts matching users, bounds the requested page by that count and
// fetches the page. Backend errors are returned as is, wrapped.
func (s *Service) List(ctx context.Context, rawSearch, rawPage string) (*Listing, error) {
	if s.snapshotReads {
		if sr, ok := s.reader.(storage.SnapshotReader); ok {
			var listing *Listing
			err := sr.WithSnapshot(ctx, func(r storage.UserReader) error {
				var err error
				listing, err = list(ctx, r, rawSearch, rawPage)
				return err
			})
			if err != nil {
				return nil, err
			}
			return listing, nil
		}
		slog.Debug("Reader has no snapshot support, using separate reads")
	}
	return list(ctx, s.reader, rawSearch, rawPage)
}

func list(ctx context.Context, r storage.UserReader, rawSearch, rawPage string) (*Listing, error) {
	filter := domain.UserFilter{NameContains: rawSearch}

	total, err := r.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalPages := TotalPages(total)
	q := BuildQuery(rawSearch, rawPage, totalPages)

	users, err := r.Fetch(ctx, q.Filter, q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	slog.Debug("Users listed",
		"search", rawSearch,
		"page", q.Page,
		"total_pages", totalPages,
		"total", total,
		"returned", len(users))

	current := State{Search: rawSearch, Page: q.Page}
	listing := &Listing{
		Users:      users,
		Search:     rawSearch,
		Page:       q.Page,
		TotalPages: totalPages,
		TotalCount: total,
		Previous:   PreviousLink(q.Page, current),
		Next:       NextLink(q.Page, totalPages, current),
	}
	if total > 0 {
		listing.From = int64(q.Offset) + 1
		listing.To = min(int64(q.Page*PageSize), total)
	}

	return listing, nil
}
