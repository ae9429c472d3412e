package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a missing user id means the middleware
// did not run on this route.
func ctxIdentity(c echo.Context) (userID, sessionID string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	sessionID, _ = c.Get("session_id").(string)
	return userID, sessionID, nil
}
