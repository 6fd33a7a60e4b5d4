package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobzen/dashboard/internal/api/cookie"
	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	toasts      ports.ToastQueue
	jar         cookie.Jar
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, toasts ports.ToastQueue, jar cookie.Jar, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, toasts: toasts, jar: jar, log: log}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	// Redirect is the page the guard bounced the user from.
	Redirect string `json:"redirect,omitempty"`
}

type registerRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     domain.Role `json:"role" validate:"required,oneof=employer worker client partner inspector"`
	Phone    string      `json:"phone,omitempty" validate:"omitempty,max=32"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type completeProfileRequest struct {
	Role domain.Role `json:"role" validate:"required,oneof=employer worker client partner inspector"`
}

// Login authenticates against the Jobzen API and starts a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  actionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sess, err := h.authService.Login(c.Request().Context(), ports.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return failWithFallback(err, "Login failed. Please check your credentials.")
	}
	if err := h.jar.SetSession(c, sess); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, actionResponse{
		User:     &sess.User,
		Redirect: landingPage(sess.User.Role, req.Redirect),
		Toast:    toast(domain.SuccessToast("Welcome back!", "")),
	})
}

// Register creates an account and signs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  actionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sess, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Phone:    req.Phone,
	})
	if err != nil {
		return failWithFallback(err, "Registration failed. Please try again.")
	}
	if err := h.jar.SetSession(c, sess); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, actionResponse{
		User:     &sess.User,
		Redirect: sess.User.Role.Dashboard(),
		Toast:    toast(domain.SuccessToast("Account created", "Welcome to Jobzen!")),
	})
}

// Logout ends the session and clears both auth cookies.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  actionResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if id := cookie.SessionID(c); id != "" {
		if err := h.authService.Logout(c.Request().Context(), id); err != nil {
			h.log.Error().Err(err).Msg("logout")
		}
	}
	h.jar.ClearSession(c)

	return c.JSON(http.StatusOK, actionResponse{Redirect: "/login"})
}

// ForgotPassword asks the API to mail a reset link.
//
// @Summary      Request a password reset link
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  actionResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return failWith(err, "Something went wrong. Please try again.")
	}

	return c.JSON(http.StatusOK, actionResponse{
		Toast: toast(domain.SuccessToast("Reset Link Sent", "If an account exists with this email, you will receive a reset link shortly.")),
	})
}

// ResetPassword sets a new password from a reset link token.
//
// @Summary      Reset password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resetPasswordRequest  true  "Token and new password"
// @Success      200   {object}  actionResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authService.ResetPassword(c.Request().Context(), req.Token, req.Password); err != nil {
		return failWith(err, "Failed to reset password. The link may be invalid or expired.")
	}

	return c.JSON(http.StatusOK, actionResponse{
		Redirect: "/login",
		Toast:    toast(domain.SuccessToast("Success", "Your password has been reset successfully.")),
	})
}

// OAuthCallback completes a provider sign-in and redirects to the user's
// landing page, or back to /login with an error code.
//
// @Summary      OAuth callback
// @Tags         auth
// @Param        token  query  string  true  "Access token"
// @Param        user   query  string  true  "URL-encoded user JSON"
// @Success      307
// @Router       /auth/callback [get]
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	ctx := c.Request().Context()
	sess, err := h.authService.OAuthCallback(ctx, c.QueryParam("token"), c.QueryParam("user"))
	if err != nil {
		code := domain.ErrOAuthFailed.Error()
		if errors.Is(err, domain.ErrOAuthTokenMissing) {
			code = domain.ErrOAuthTokenMissing.Error()
		}
		return c.Redirect(http.StatusTemporaryRedirect, "/login?error="+url.QueryEscape(code))
	}
	if err := h.jar.SetSession(c, sess); err != nil {
		return err
	}

	if err := h.toasts.Push(ctx, sess.ID, domain.SuccessToast("Welcome!", "Signed in successfully.")); err != nil {
		h.log.Warn().Err(err).Msg("queue sign-in toast")
	}
	return c.Redirect(http.StatusTemporaryRedirect, sess.User.Role.Dashboard())
}

// CompleteProfile assigns a role to a user who signed up through OAuth.
//
// @Summary      Complete profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      completeProfileRequest  true  "Chosen role"
// @Success      200   {object}  actionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/users/complete-profile [patch]
func (h *AuthHandler) CompleteProfile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req completeProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.authService.CompleteProfile(c.Request().Context(), sess, req.Role)
	if err != nil {
		return failWithFallback(err, "Failed to update profile. Please try again.")
	}
	if err := h.jar.RefreshUser(c, updated.User); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, actionResponse{
		User:     &updated.User,
		Redirect: updated.User.Role.Dashboard(),
		Toast:    toast(domain.SuccessToast("Profile completed successfully!", "")),
	})
}

// localPath accepts only same-origin absolute paths. Browsers read "/\" as
// "//", so backslashes and control characters are rejected outright.
func localPath(p string) bool {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return false
	}
	if strings.ContainsRune(p, '\\') || strings.ContainsFunc(p, unicode.IsControl) {
		return false
	}
	u, err := url.Parse(p)
	return err == nil && u.Scheme == "" && u.Host == ""
}

// landingPage honours the page the guard bounced the user from when it is a
// local path the role may open; otherwise it is the role's dashboard.
func landingPage(role domain.Role, redirect string) string {
	if !localPath(redirect) {
		return role.Dashboard()
	}
	if role == domain.RoleUnassigned || !role.CanVisit(redirect) {
		return role.Dashboard()
	}
	return redirect
}
