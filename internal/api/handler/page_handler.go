package handler

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/jobzen/dashboard/internal/api/cookie"
	"github.com/jobzen/dashboard/internal/api/view"
	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// PageHandler renders the HTML shells. Data is loaded by the browser from
// the JSON API; shells only carry the theme, the user and the navigation.
type PageHandler struct {
	themes     ports.ThemeService
	dashboards ports.DashboardService
}

func NewPageHandler(themes ports.ThemeService, dashboards ports.DashboardService) *PageHandler {
	return &PageHandler{themes: themes, dashboards: dashboards}
}

func (h *PageHandler) page(c echo.Context, title string) view.Page {
	id := h.themes.Active(c.Request().Context(), ctxUserID(c), cookie.Theme(c))
	p := view.Page{
		Title:      title,
		Theme:      id,
		Themes:     domain.Themes,
		StyleSheet: template.CSS(h.themes.StyleSheet(id)),
	}
	if sess, ok := c.Get("session").(*domain.Session); ok {
		u := sess.User
		p.User = &u
	}
	return p
}

// Public returns a handler for a page anyone may open.
func (h *PageHandler) Public(name, title string) echo.HandlerFunc {
	return func(c echo.Context) error {
		p := h.page(c, title)
		p.Redirect = c.QueryParam("redirect")
		p.Error = c.QueryParam("error")
		p.Token = c.QueryParam("token")
		p.Roles = domain.SelectableRoles
		return c.Render(http.StatusOK, name, p)
	}
}

// signedIn renders a page that needs a live session, sending the browser to
// /login when the session is gone.
func (h *PageHandler) signedIn(c echo.Context, title string) (view.Page, bool, error) {
	p := h.page(c, title)
	if p.User == nil {
		to := "/login?redirect=" + url.QueryEscape(c.Request().URL.Path)
		return p, false, c.Redirect(http.StatusTemporaryRedirect, to)
	}
	cfg := h.dashboards.Config(p.User.Role)
	p.Dashboard = &cfg
	return p, true, nil
}

func (h *PageHandler) Profile(c echo.Context) error {
	p, ok, err := h.signedIn(c, "Profile")
	if !ok {
		return err
	}
	return c.Render(http.StatusOK, "profile", p)
}

func (h *PageHandler) CompleteProfile(c echo.Context) error {
	p, ok, err := h.signedIn(c, "Complete your profile")
	if !ok {
		return err
	}
	if p.User.Role != domain.RoleUnassigned {
		return c.Redirect(http.StatusTemporaryRedirect, p.User.Role.Dashboard())
	}
	p.Roles = domain.SelectableRoles
	return c.Render(http.StatusOK, "complete_profile", p)
}

// Dashboard renders /:role/dashboard for the signed-in role.
func (h *PageHandler) Dashboard(c echo.Context) error {
	p, ok, err := h.signedIn(c, "Dashboard")
	if !ok {
		return err
	}
	if ok, err := h.ownRole(c, p.User.Role); !ok {
		return err
	}
	p.Section = domain.MenuItem{Label: "Dashboard", Href: c.Request().URL.Path}
	return c.Render(http.StatusOK, "dashboard", p)
}

// Section renders one sidebar destination, /:role/:section. The employer's
// clients and workers sections manage accounts.
func (h *PageHandler) Section(c echo.Context) error {
	p, ok, err := h.signedIn(c, "")
	if !ok {
		return err
	}
	role := p.User.Role
	if ok, err := h.ownRole(c, role); !ok {
		return err
	}

	href := "/" + string(role) + "/" + c.Param("section")
	if !p.Dashboard.HasPath(href) {
		return echo.ErrNotFound
	}
	p.Title = p.Dashboard.Label(href)
	p.Section = domain.MenuItem{Label: p.Title, Href: href}

	if managed, ok := managedSections[href]; ok {
		p.ManagedRole = managed
		return c.Render(http.StatusOK, "managed_users", p)
	}
	return c.Render(http.StatusOK, "section", p)
}

var managedSections = map[string]domain.Role{
	"/employer/clients": domain.RoleClient,
	"/employer/workers": domain.RoleWorker,
}

// ownRole checks the :role path parameter against the signed-in role. The
// guard redirects mismatches before they get here; unknown roles are 404.
func (h *PageHandler) ownRole(c echo.Context, role domain.Role) (bool, error) {
	param := domain.Role(c.Param("role"))
	if param == role {
		return true, nil
	}
	if _, known := domain.RoleForPath("/" + string(param)); !known {
		return false, echo.ErrNotFound
	}
	return false, c.Redirect(http.StatusTemporaryRedirect, role.Dashboard())
}
