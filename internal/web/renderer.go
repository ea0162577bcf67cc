// Package web renders the server-side HTML of the user directory.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates implements echo.Renderer over the embedded page templates.
type Templates struct {
	pages map[string]*template.Template
}

// NewTemplates parses every page template together with the shared layout.
func NewTemplates() (*Templates, error) {
	names := []string{"users.html", "error.html"}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Templates{pages: pages}, nil
}

func (t *Templates) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	page, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return page.ExecuteTemplate(w, "layout", data)
}
