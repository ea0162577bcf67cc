package web

import (
	"github.com/DjordjeVuckovic/user-directory/internal/debounce"
	"github.com/DjordjeVuckovic/user-directory/internal/directory"
	"github.com/DjordjeVuckovic/user-directory/internal/domain"
)

const UsersPage = "users.html"

// UsersView is the data of the directory page.
type UsersView struct {
	BasePath         string
	// CanonicalHref is the canonical URL of the page being shown.
	CanonicalHref    string
	Search           string
	Users            []domain.User
	From             int64
	To               int64
	TotalCount       int64
	PreviousHref     string
	NextHref         string
	QuiescenceMillis int64
}

func NewUsersView(l *directory.Listing, basePath string) UsersView {
	if basePath == "" {
		basePath = directory.DefaultBasePath
	}
	return UsersView{
		BasePath:         basePath,
		CanonicalHref:    l.State().Href(basePath),
		Search:           l.Search,
		Users:            l.Users,
		From:             l.From,
		To:               l.To,
		TotalCount:       l.TotalCount,
		PreviousHref:     l.Previous.Href(basePath),
		NextHref:         l.Next.Href(basePath),
		QuiescenceMillis: debounce.DefaultQuiescence.Milliseconds(),
	}
}
