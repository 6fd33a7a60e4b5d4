// Package view renders the dashboard's HTML page shells.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobzen/dashboard/internal/core/domain"
)

//go:embed templates
var templateFS embed.FS

// Page is the data every page shell receives.
type Page struct {
	Title      string
	Theme      domain.ThemeID
	Themes     []domain.Theme
	StyleSheet template.CSS
	User       *domain.User
	Dashboard  *domain.DashboardConfig
	// Section is the menu entry being shown on a section page.
	Section     domain.MenuItem
	ManagedRole domain.Role
	Roles       []domain.Role
	Redirect    string
	Error       string
	Token       string
}

// Renderer implements echo.Renderer. Each page template is parsed together
// with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

var funcs = template.FuncMap{
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"initial": func(u *domain.User) string {
		if u == nil {
			return "?"
		}
		name := u.DisplayName()
		if name == "" {
			return "?"
		}
		return strings.ToUpper(name[:1])
	},
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, f := range files {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/chrome.html", f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render writes page name wrapped in the layout.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}
