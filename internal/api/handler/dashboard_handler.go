package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobzen/dashboard/internal/api/cookie"
	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

type DashboardHandler struct {
	dashboards ports.DashboardService
	toasts     ports.ToastQueue
	log        zerolog.Logger
}

func NewDashboardHandler(dashboards ports.DashboardService, toasts ports.ToastQueue, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards, toasts: toasts, log: log}
}

// dashboardResponse is the sidebar and banner of the caller's dashboard.
type dashboardResponse struct {
	User      domain.User            `json:"user"`
	Dashboard domain.DashboardConfig `json:"dashboard"`
}

// Config returns the navigation and welcome banner for the caller's role.
//
// @Summary      Dashboard configuration
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Config(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		User:      sess.User,
		Dashboard: h.dashboards.Config(sess.User.Role),
	})
}

// Toasts drains notifications queued for the session during a redirect.
//
// @Summary      Pending toasts
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  domain.Toast
// @Router       /api/toasts [get]
func (h *DashboardHandler) Toasts(c echo.Context) error {
	id := cookie.SessionID(c)
	if id == "" {
		return c.JSON(http.StatusOK, []domain.Toast{})
	}

	toasts, err := h.toasts.Drain(c.Request().Context(), id)
	if err != nil {
		h.log.Warn().Err(err).Msg("drain toasts")
		return c.JSON(http.StatusOK, []domain.Toast{})
	}
	if toasts == nil {
		toasts = []domain.Toast{}
	}
	return c.JSON(http.StatusOK, toasts)
}
