package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"recruitdesk/internal/auth"
	"recruitdesk/pkg/models"
)

// AuthHandler serves the session lifecycle endpoints
type AuthHandler struct {
	sessions *auth.Manager
}

// NewAuthHandler creates the auth handler
func NewAuthHandler(sessions *auth.Manager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid_request", "Invalid request body: "+err.Error())
	}
	if err := req.Validate(); err != nil {
		return respondError(c, err)
	}

	session, err := h.sessions.Login(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.SessionResponse{
		Token:     session.Token,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /api/logout; revoking an unknown or absent token
// still succeeds
func (h *AuthHandler) Logout(c echo.Context) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		h.sessions.Logout(strings.TrimSpace(token))
	}
	return c.NoContent(http.StatusNoContent)
}
