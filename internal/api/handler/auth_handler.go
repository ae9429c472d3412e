package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gridsentry/genset-monitoring/internal/api/metrics"
	"github.com/gridsentry/genset-monitoring/internal/api/middleware"
	"github.com/gridsentry/genset-monitoring/internal/core/ports"
)

// AuthHandler owns the session lifecycle: register, login, logout, whoami.
type AuthHandler struct {
	users     ports.UserService
	cookieTTL time.Duration
	secure    bool
}

func NewAuthHandler(users ports.UserService, cookieTTL time.Duration, secure bool) *AuthHandler {
	if cookieTTL <= 0 {
		cookieTTL = 24 * time.Hour
	}
	return &AuthHandler{users: users, cookieTTL: cookieTTL, secure: secure}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	NIPP     string `json:"nipp"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Position string `json:"position" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates an unverified employee account.
//
// @Summary      Register a new employee
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  envelope
// @Failure      409   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.users.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		NIPP:     req.NIPP,
		Email:    req.Email,
		Position: req.Position,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return respondMessage(c, http.StatusCreated, user, "registration received, awaiting approval")
}

// Login authenticates and sets the session cookie.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      201   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.SessionsOpenedTotal.WithLabelValues("rejected").Inc()
		return err
	}
	metrics.SessionsOpenedTotal.WithLabelValues("ok").Inc()

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return respond(c, http.StatusCreated, result.User)
}

// Logout invalidates the session and clears the cookie.
//
// @Summary      Logout
// @Tags         users
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /users/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	_, sessionID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.users.Logout(c.Request().Context(), sessionID); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return respondMessage(c, http.StatusOK, nil, "logged out")
}

// Me resolves the current session identity.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.users.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user)
}
