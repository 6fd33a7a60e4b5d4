package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobzen/dashboard/internal/api/cookie"
	"github.com/jobzen/dashboard/internal/api/metrics"
	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

type ThemeHandler struct {
	themes ports.ThemeService
	jar    cookie.Jar
}

func NewThemeHandler(themes ports.ThemeService, jar cookie.Jar) *ThemeHandler {
	return &ThemeHandler{themes: themes, jar: jar}
}

type selectThemeRequest struct {
	ID domain.ThemeID `json:"id" validate:"required"`
}

// themeResponse carries everything the browser needs to apply a theme
// without reloading.
type themeResponse struct {
	ID     domain.ThemeID  `json:"id"`
	Name   string          `json:"name"`
	Tokens domain.TokenMap `json:"tokens"`
}

type themeListResponse struct {
	Active domain.ThemeID `json:"active"`
	Themes []domain.Theme `json:"themes"`
}

func (h *ThemeHandler) active(c echo.Context) domain.ThemeID {
	return h.themes.Active(c.Request().Context(), ctxUserID(c), cookie.Theme(c))
}

func (h *ThemeHandler) response(id domain.ThemeID) themeResponse {
	t := domain.LookupTheme(id)
	return themeResponse{ID: t.ID, Name: t.Name, Tokens: h.themes.Tokens(t.ID)}
}

// List returns the picker entries and the active selection.
//
// @Summary      List themes
// @Tags         theme
// @Produce      json
// @Success      200  {object}  themeListResponse
// @Router       /api/themes [get]
func (h *ThemeHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, themeListResponse{Active: h.active(c), Themes: domain.Themes})
}

// Get returns the active theme and its tokens.
//
// @Summary      Active theme
// @Tags         theme
// @Produce      json
// @Success      200  {object}  themeResponse
// @Router       /api/theme [get]
func (h *ThemeHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.response(h.active(c)))
}

// Select switches the active theme. Every token is returned so the caller
// can overwrite all variables on :root.
//
// @Summary      Select theme
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        body  body      selectThemeRequest  true  "Theme id"
// @Success      200   {object}  themeResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/theme [put]
func (h *ThemeHandler) Select(c echo.Context) error {
	var req selectThemeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	t, err := h.themes.Select(c.Request().Context(), ctxUserID(c), req.ID)
	if err != nil {
		return failWith(err, "Unknown theme")
	}
	h.jar.SetTheme(c, t.ID)
	metrics.ThemeSelectionsTotal.WithLabelValues(string(t.ID)).Inc()

	return c.JSON(http.StatusOK, h.response(t.ID))
}

// StyleSheet serves the active theme as a :root rule.
//
// @Summary      Theme stylesheet
// @Tags         theme
// @Produce      text/css
// @Success      200  {string}  string
// @Router       /theme.css [get]
func (h *ThemeHandler) StyleSheet(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(h.themes.StyleSheet(h.active(c))))
}
