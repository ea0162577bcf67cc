package web

import (
	"bytes"
	"testing"

	"github.com/DjordjeVuckovic/user-directory/internal/apperr"
	"github.com/DjordjeVuckovic/user-directory/internal/directory"
	"github.com/DjordjeVuckovic/user-directory/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_RenderUsers(t *testing.T) {
	tmpl, err := NewTemplates()
	require.NoError(t, err)

	current := directory.State{Search: "<ann>", Page: 2}
	l := &directory.Listing{
		Users:      []domain.User{{ID: 7, Name: "<b>Ann</b>", Email: "ann@example.com"}},
		Search:     "<ann>",
		Page:       2,
		TotalPages: 3,
		TotalCount: 13,
		From:       7,
		To:         12,
		Previous:   directory.PreviousLink(2, current),
		Next:       directory.NextLink(2, 3, current),
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, UsersPage, NewUsersView(l, ""), nil))
	html := buf.String()

	assert.Contains(t, html, "&lt;b&gt;Ann&lt;/b&gt;")
	assert.NotContains(t, html, "<b>Ann</b>")
	assert.Contains(t, html, `value="&lt;ann&gt;"`)
	assert.Contains(t, html, "Showing <b>7</b> to <b>12</b> of <b>13</b> Users")
	assert.Contains(t, html, `href="/?search=%3Cann%3E"`)
	assert.Contains(t, html, `href="/?search=%3Cann%3E&amp;page=3"`)
	assert.Regexp(t, `var quiescence =\s*500\s*;`, html)
	assert.Contains(t, html, "Add user")
	assert.Contains(t, html, `<link rel="canonical" href="/?search=%3Cann%3E&amp;page=2">`)
}

func TestTemplates_RenderDisabledLinks(t *testing.T) {
	tmpl, err := NewTemplates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, UsersPage, NewUsersView(&directory.Listing{Page: 1}, "/"), nil))

	assert.Contains(t, buf.String(), "<button class=\"btn\" disabled>Previous</button>")
	assert.Contains(t, buf.String(), "<button class=\"btn\" disabled>Next</button>")
}

func TestTemplates_RenderError(t *testing.T) {
	tmpl, err := NewTemplates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, apperr.ErrorPage, apperr.ErrorView{Status: 500, Message: "internal server error", HomePath: "/users"}, nil))
	assert.Contains(t, buf.String(), "<h1>500</h1>")
	assert.NotContains(t, buf.String(), "canonical")
	assert.Contains(t, buf.String(), `<a class="btn" href="/users">Back to users</a>`)
}

func TestTemplates_UnknownTemplate(t *testing.T) {
	tmpl, err := NewTemplates()
	require.NoError(t, err)

	assert.Error(t, tmpl.Render(&bytes.Buffer{}, "missing.html", nil, nil))
}
