package handler

import "github.com/labstack/echo/v4"

// envelope is the response wrapper every endpoint returns:
// {acknowledge, data, message?}. Errors set acknowledge=false and carry the
// user-facing text in message (see internal/api.NewHTTPErrorHandler).
type envelope struct {
	Acknowledge bool   `json:"acknowledge"`
	Data        any    `json:"data,omitempty"`
	Message     string `json:"message,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Acknowledge: true, Data: data})
}

func respondMessage(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, envelope{Acknowledge: true, Data: data, Message: message})
}
