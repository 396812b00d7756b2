// Package render turns view-models into HTML pages.  Templates are embedded
// in the binary and parsed once at startup; each page is its own template set
// sharing layout.html.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/middleware"
)

//go:embed templates
var files embed.FS

// Page is the data handed to every template.
type Page struct {
	Title      string
	Flash      *middleware.Notice
	Data       any
	Form       any
	Errors     map[string]string
	SearchTerm string
	// Action is the form target on create/edit pages.
	Action string
}

// Renderer implements echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page under templates/pages.
func New() (*Renderer, error) {
	entries, err := fs.ReadDir(files, "templates/pages")
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(entries))}
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		t, err := template.New(name).Funcs(Funcs()).ParseFS(files,
			"templates/layout.html", "templates/pages/"+e.Name())
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the named page.  data is normally a Page; anything else is
// wrapped into Page.Data.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("render: unknown page %q", name)
	}
	page, ok := data.(Page)
	if !ok {
		page = Page{Data: data}
	}
	if page.Flash == nil && c != nil {
		page.Flash = middleware.Flashed(c)
	}
	return t.ExecuteTemplate(w, "layout", page)
}
