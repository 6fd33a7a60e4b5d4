// Package cookie names and writes the cookies the dashboard relies on.
package cookie

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobzen/dashboard/internal/core/domain"
)

const (
	// SessionName holds the opaque session id. HttpOnly.
	SessionName = "jobzen_session"
	// AuthStorageName mirrors the auth store as URL-escaped JSON for the
	// route guard and client scripts.
	AuthStorageName = "auth-storage"
	// ThemeName carries the visitor's theme selection.
	ThemeName = "jobzen-theme"

	DefaultMaxAge = 7 * 24 * time.Hour
	themeMaxAge   = 365 * 24 * time.Hour
)

// Jar writes cookies with consistent attributes.
type Jar struct {
	Secure bool
	MaxAge time.Duration
}

func (j Jar) maxAge() int {
	if j.MaxAge <= 0 {
		return int(DefaultMaxAge.Seconds())
	}
	return int(j.MaxAge.Seconds())
}

// SetSession writes the session id and the auth-storage mirror.
func (j Jar) SetSession(c echo.Context, sess *domain.Session) error {
	snapshot, err := domain.NewAuthSnapshot(sess.User).Encode()
	if err != nil {
		return err
	}
	c.SetCookie(j.cookie(SessionName, sess.ID, j.maxAge(), true))
	c.SetCookie(j.cookie(AuthStorageName, snapshot, j.maxAge(), false))
	return nil
}

// RefreshUser rewrites the auth-storage mirror after the cached user changed.
func (j Jar) RefreshUser(c echo.Context, u domain.User) error {
	snapshot, err := domain.NewAuthSnapshot(u).Encode()
	if err != nil {
		return err
	}
	c.SetCookie(j.cookie(AuthStorageName, snapshot, j.maxAge(), false))
	return nil
}

// ClearSession expires both auth cookies.
func (j Jar) ClearSession(c echo.Context) {
	c.SetCookie(j.cookie(SessionName, "", -1, true))
	c.SetCookie(j.cookie(AuthStorageName, "", -1, false))
}

// SetTheme stores the selected theme for a year.
func (j Jar) SetTheme(c echo.Context, id domain.ThemeID) {
	c.SetCookie(j.cookie(ThemeName, string(id), int(themeMaxAge.Seconds()), false))
}

// SessionID returns the session cookie value or "".
func SessionID(c echo.Context) string {
	return value(c, SessionName)
}

// Theme returns the theme cookie value or "".
func Theme(c echo.Context) string {
	return value(c, ThemeName)
}

func value(c echo.Context, name string) string {
	ck, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return ck.Value
}

// cookie builds a root-path cookie. A negative maxAge deletes it.
func (j Jar) cookie(name, val string, maxAge int, httpOnly bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    val,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: httpOnly,
		Secure:   j.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
