package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobzen/dashboard/internal/core/domain"
)

// ToastError attaches the notification to show when err reaches the HTTP
// error handler. With PreferUpstream set, a message supplied by the Jobzen
// API replaces the description.
type ToastError struct {
	Err            error
	Toast          domain.Toast
	PreferUpstream bool
}

func (e *ToastError) Error() string { return e.Err.Error() }

func (e *ToastError) Unwrap() error { return e.Err }

// failWith shows description regardless of what the API said.
func failWith(err error, description string) error {
	return &ToastError{Err: err, Toast: domain.ErrorToast(description)}
}

// failWithFallback shows the API's message, or description when it sent none.
func failWithFallback(err error, description string) error {
	return &ToastError{Err: err, Toast: domain.ErrorToast(description), PreferUpstream: true}
}

// invalid turns a bind or validation failure into a 400 with a toast.
func invalid(err error) error {
	he := echo.NewHTTPError(http.StatusBadRequest, err.Error())
	return &ToastError{Err: he, Toast: domain.ErrorToast(err.Error())}
}

// bindAndValidate decodes the request body into req and runs its
// validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return invalid(errors.New("invalid payload"))
	}
	if err := c.Validate(req); err != nil {
		return invalid(err)
	}
	return nil
}

// actionResponse is returned by endpoints that drive navigation.
type actionResponse struct {
	User     *domain.User  `json:"user,omitempty"`
	Redirect string        `json:"redirect,omitempty"`
	Toast    *domain.Toast `json:"toast,omitempty"`
}

func toast(t domain.Toast) *domain.Toast { return &t }
