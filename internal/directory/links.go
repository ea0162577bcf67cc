package directory

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultBasePath is the path of the directory page.
const DefaultBasePath = "/"

// State is the shareable URL state of the directory page.
// Page 0 and 1 both mean the first page.
type State struct {
	Search string
	Page   int
}

// Canonicalize drops default values: the first page is never explicit.
func Canonicalize(s State) State {
	if s.Page <= 1 {
		s.Page = 0
	}
	return s
}

// Encode returns the canonical query string for s, search first.
// The empty state encodes to "".
func (s State) Encode() string {
	c := Canonicalize(s)

	var parts []string
	if c.Search != "" {
		parts = append(parts, SearchParam+"="+url.QueryEscape(c.Search))
	}
	if c.Page > 0 {
		parts = append(parts, PageParam+"="+strconv.Itoa(c.Page))
	}
	return strings.Join(parts, "&")
}

// Values returns the canonical state as url.Values.
func (s State) Values() url.Values {
	c := Canonicalize(s)

	v := url.Values{}
	if c.Search != "" {
		v.Set(SearchParam, c.Search)
	}
	if c.Page > 0 {
		v.Set(PageParam, strconv.Itoa(c.Page))
	}
	return v
}

// Href returns basePath with the encoded state appended.
func (s State) Href(basePath string) string {
	if basePath == "" {
		basePath = DefaultBasePath
	}
	q := s.Encode()
	if q == "" {
		return basePath
	}
	return basePath + "?" + q
}

// Link is a navigation target. A disabled link has no target state.
type Link struct {
	Enabled bool
	State   State
}

// Href returns the link target under basePath, or "" for a disabled link.
func (l Link) Href(basePath string) string {
	if !l.Enabled {
		return ""
	}
	return l.State.Href(basePath)
}

// PreviousLink returns the link to the page before page.
// current supplies the search state to carry over; its Page is ignored.
func PreviousLink(page int, current State) Link {
	if page <= 1 {
		return Link{}
	}
	return Link{
		Enabled: true,
		State:   Canonicalize(State{Search: current.Search, Page: page - 1}),
	}
}

// NextLink returns the link to the page after page.
func NextLink(page, totalPages int, current State) Link {
	if page >= totalPages {
		return Link{}
	}
	return Link{
		Enabled: true,
		State:   State{Search: current.Search, Page: page + 1},
	}
}
