package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gridsentry/genset-monitoring/internal/core/ports"
)

type NotificationHandler struct {
	notifications ports.NotificationService
}

func NewNotificationHandler(notifications ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List handles GET /notifications/:userId.
//
// @Summary      List a user's notifications
// @Tags         notifications
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  envelope
// @Router       /notifications/{userId} [get]
func (h *NotificationHandler) List(c echo.Context) error {
	items, err := h.notifications.ListForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, items)
}

// MarkRead handles PATCH /notifications/read/:id.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /notifications/read/{id} [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.notifications.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, nil, "notification read")
}

// Summary handles GET /notifications/summary/data — the dashboard card counts.
//
// @Summary      Dashboard summary counts
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /notifications/summary/data [get]
func (h *NotificationHandler) Summary(c echo.Context) error {
	sum, err := h.notifications.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, sum)
}
