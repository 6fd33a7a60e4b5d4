package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobzen/dashboard/internal/core/domain"
)

// ctxSession extracts the session injected by the LoadSession middleware.
// Its absence means the route was registered without RequireSession.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, ok := c.Get("session").(*domain.Session)
	if !ok || sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return sess, nil
}

// ctxUserID returns the signed-in user's id, or "" for anonymous visitors.
func ctxUserID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}
