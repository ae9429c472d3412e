package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

// SessionChecker verifies a session id against the active-session registry.
type SessionChecker interface {
	Get(ctx context.Context, sessionID string) (string, error)
}

// Auth validates the session token (cookie first, Authorization header as a
// fallback), confirms the session is still active, and injects the caller's
// identity into the request context.
func Auth(jwtSecret string, sessions SessionChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			sessionID, _ := claims["sid"].(string)
			userID, _ := claims["sub"].(string)
			if sessionID == "" || userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			// Token may be valid while the session was logged out server-side.
			holder, err := sessions.Get(c.Request().Context(), sessionID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "session check failed")
			}
			if holder != userID {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			admin, _ := claims["admin"].(bool)
			c.Set("user_id", userID)
			c.Set("session_id", sessionID)
			c.Set("admin", admin)

			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
