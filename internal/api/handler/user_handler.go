package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gridsentry/genset-monitoring/internal/core/ports"
)

// UserHandler covers the employee directory and the approval workflow.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /users — the full employee directory. Consumers paginate
// and filter client-side.
//
// @Summary      List employees
// @Tags         users
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, users)
}

// Approve handles PATCH /users/approve/:id — flips the verified flag.
//
// @Summary      Approve an employee
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /users/approve/{id} [patch]
func (h *UserHandler) Approve(c echo.Context) error {
	user, err := h.users.Approve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, user, "employee approved")
}

// Delete handles DELETE /users/:id.
//
// @Summary      Delete an employee
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, nil, "employee deleted")
}
