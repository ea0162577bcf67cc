package dto

import "github.com/DjordjeVuckovic/user-directory/internal/directory"

// User is the API representation of a directory entry
type User struct {
	ID    int64  `json:"id" example:"7"`
	Name  string `json:"name" example:"Ann Lee"`
	Email string `json:"email" example:"ann@example.com"`
}

// PageLink describes a previous/next navigation target
type PageLink struct {
	Enabled bool   `json:"enabled"`
	Href    string `json:"href,omitempty" example:"/?search=ann&page=3"`
	// Page is the target page number, 1 for the first page
	Page int `json:"page,omitempty" example:"3"`
}

// UserListResponse is one page of the user directory
type UserListResponse struct {
	Users      []User   `json:"users"`
	Search     string   `json:"search,omitempty" example:"ann"`
	Page       int      `json:"page" example:"2"`
	TotalPages int      `json:"total_pages" example:"3"`
	TotalCount int64    `json:"total_count" example:"13"`
	From       int64    `json:"from" example:"7"`
	To         int64    `json:"to" example:"12"`
	Previous   PageLink `json:"previous"`
	Next       PageLink `json:"next"`
}

// NewUserListResponse maps a listing to its API form; hrefs point at the HTML page under basePath
func NewUserListResponse(l *directory.Listing, basePath string) UserListResponse {
	users := make([]User, 0, len(l.Users))
	for _, u := range l.Users {
		users = append(users, User{ID: u.ID, Name: u.Name, Email: u.Email})
	}

	return UserListResponse{
		Users:      users,
		Search:     l.Search,
		Page:       l.Page,
		TotalPages: l.TotalPages,
		TotalCount: l.TotalCount,
		From:       l.From,
		To:         l.To,
		Previous:   newPageLink(l.Previous, basePath),
		Next:       newPageLink(l.Next, basePath),
	}
}

func newPageLink(l directory.Link, basePath string) PageLink {
	if !l.Enabled {
		return PageLink{}
	}
	page := l.State.Page
	if page < 1 {
		page = 1
	}
	return PageLink{Enabled: true, Href: l.Href(basePath), Page: page}
}
