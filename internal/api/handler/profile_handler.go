package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobzen/dashboard/internal/api/cookie"
	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

type ProfileHandler struct {
	profiles ports.ProfileService
	jar      cookie.Jar
}

func NewProfileHandler(profiles ports.ProfileService, jar cookie.Jar) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, jar: jar}
}

type updateProfileRequest struct {
	Name      string `json:"name,omitempty" validate:"omitempty,max=120"`
	FirstName string `json:"firstName,omitempty" validate:"omitempty,max=60"`
	LastName  string `json:"lastName,omitempty" validate:"omitempty,max=60"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=32"`
	AvatarURL string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
}

// Me returns the signed-in user, refreshed from the API when reachable.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  map[string]string
// @Router       /api/users/me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	u, err := h.profiles.Profile(c.Request().Context(), sess)
	if err != nil {
		return err
	}
	if err := h.jar.RefreshUser(c, *u); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// UpdateProfile saves the editable profile fields.
//
// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  actionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/users/profile [patch]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	u, err := h.profiles.UpdateProfile(c.Request().Context(), sess, domain.ProfileUpdate{
		Name:      req.Name,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return failWithFallback(err, "Failed to save profile.")
	}
	if err := h.jar.RefreshUser(c, *u); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, actionResponse{
		User:  u,
		Toast: toast(domain.SuccessToast("Profile Updated", "Your changes have been saved.")),
	})
}
