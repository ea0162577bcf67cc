package es

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/user-directory/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

// Document is the indexed form of a user
type Document struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toDocument(u domain.User) Document {
	return Document{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (d Document) toDomain() domain.User {
	return domain.User{ID: d.ID, Name: d.Name, Email: d.Email}
}

func (d Document) docID() string {
	return strconv.FormatInt(d.ID, 10)
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

// filterQuery matches names containing the filter term literally.
// name is a keyword field, so the match is case-sensitive like the other backends.
func filterQuery(filter domain.UserFilter) *types.Query {
	if filter.IsEmpty() {
		return &types.Query{MatchAll: types.NewMatchAllQuery()}
	}

	pattern := "*" + wildcardEscaper.Replace(filter.NameContains) + "*"
	return &types.Query{
		Wildcard: map[string]types.WildcardQuery{
			"name": {Value: &pattern},
		},
	}
}
