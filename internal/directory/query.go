package directory

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/user-directory/internal/domain"
	"github.com/DjordjeVuckovic/user-directory/pkg/pagination"
)

// PageSize is the fixed number of users shown per page.
const PageSize = 6

const (
	SearchParam = "search"
	PageParam   = "page"
)

// Query is the bounded, validated form of an inbound listing request.
type Query struct {
	Filter domain.UserFilter
	Page   int
	Limit  int
	Offset int
}

// TotalPages returns the number of pages needed to show totalCount users.
func TotalPages(totalCount int64) int {
	return pagination.TotalPages(totalCount, PageSize)
}

// ResolvePage coerces an untrusted page indicator into a page number.
// Anything that is not an integer in (1, totalPages] resolves to page 1,
// including values past the last page.
func ResolvePage(rawPage string, totalPages int) int {
	f, ok := parseNumber(rawPage)
	if !ok || f != math.Trunc(f) {
		return 1
	}
	if f <= 1 || f > float64(totalPages) {
		return 1
	}
	return int(f)
}

// parseNumber reads s the way a browser's numeric conversion does: decimal
// or exponent notation, or an unsigned 0x, 0o or 0b integer literal.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 2 && s[0] == '0' {
		if base := literalBase(s[1]); base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func literalBase(c byte) int {
	switch c {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

// BuildQuery turns raw search and page input into a Query.
// totalPages must come from a count taken with the same search term.
func BuildQuery(rawSearch, rawPage string, totalPages int) Query {
	page := ResolvePage(rawPage, totalPages)
	req := pagination.OffsetRequest{Page: page, Size: PageSize}

	return Query{
		Filter: domain.UserFilter{NameContains: rawSearch},
		Page:   page,
		Limit:  req.Limit(),
		Offset: req.Offset(),
	}
}

// SearchFromValues returns the search term carried by q.
// Repeated parameters carry no search term.
func SearchFromValues(q url.Values) string {
	return single(q, SearchParam)
}

// PageFromValues returns the raw page indicator carried by q.
func PageFromValues(q url.Values) string {
	return single(q, PageParam)
}

func single(q url.Values, key string) string {
	v := q[key]
	if len(v) != 1 {
		return ""
	}
	return v[0]
}
