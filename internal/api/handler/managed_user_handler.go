package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

type ManagedUserHandler struct {
	users ports.ManagedUserService
}

func NewManagedUserHandler(users ports.ManagedUserService) *ManagedUserHandler {
	return &ManagedUserHandler{users: users}
}

type createManagedUserRequest struct {
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required,min=6"`
	Role      domain.Role `json:"role" validate:"required,oneof=client worker"`
	Name      string      `json:"name,omitempty" validate:"required_without=FirstName"`
	FirstName string      `json:"firstName,omitempty"`
	LastName  string      `json:"lastName,omitempty"`
	Phone     string      `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// managedUserResponse is a created account plus the toast confirming it.
type managedUserResponse struct {
	User  *domain.User  `json:"user"`
	Toast *domain.Toast `json:"toast"`
}

// List returns the caller's managed users with summary stats.
//
// @Summary      List managed users
// @Tags         managed-users
// @Produce      json
// @Param        role  query     string  false  "client or worker"
// @Success      200   {object}  domain.ManagedUserList
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/users/managed [get]
func (h *ManagedUserHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	role := domain.Role(c.QueryParam("role"))
	list, err := h.users.List(c.Request().Context(), sess, role)
	if err != nil {
		return failWith(err, "Failed to load "+pluralRole(role))
	}
	return c.JSON(http.StatusOK, list)
}

// Create adds a client or worker account.
//
// @Summary      Create managed user
// @Tags         managed-users
// @Accept       json
// @Produce      json
// @Param        body  body      createManagedUserRequest  true  "Account details"
// @Success      201   {object}  managedUserResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/users/managed [post]
func (h *ManagedUserHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	var req createManagedUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	u, err := h.users.Create(c.Request().Context(), sess, domain.CreateManagedUser{
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Name:      req.Name,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return &ToastError{Err: err, Toast: domain.CreateFailedToast(req.Role)}
	}

	return c.JSON(http.StatusCreated, managedUserResponse{
		User:  u,
		Toast: toast(domain.SuccessToast("Success", titleRole(req.Role)+" created successfully")),
	})
}

// Delete removes a managed account.
//
// @Summary      Delete managed user
// @Tags         managed-users
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/users/managed/{id} [delete]
func (h *ManagedUserHandler) Delete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return failWithFallback(err, "Failed to delete user")
	}
	return c.NoContent(http.StatusNoContent)
}

func titleRole(r domain.Role) string {
	if r == "" {
		return "User"
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

func pluralRole(r domain.Role) string {
	if r == "" {
		return "users"
	}
	return string(r) + "s"
}
