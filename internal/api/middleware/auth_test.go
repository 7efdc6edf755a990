package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitdesk/internal/auth"
	"recruitdesk/internal/config"
)

func sessionFixture(t *testing.T) (*auth.Manager, string) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Auth.AdminEmail = "admin@example.com"
	cfg.Auth.AdminPassword = "secret"
	cfg.Auth.SessionTTL = time.Hour

	m := auth.NewManager(cfg)
	session, err := m.Login("admin@example.com", "secret")
	require.NoError(t, err)
	return m, session.Token
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, path, token string) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec.Code
}

func TestRequireSessionDisabledPassesThrough(t *testing.T) {
	sessions, _ := sessionFixture(t)
	mw := RequireSession(sessions, false)
	assert.Equal(t, http.StatusOK, invoke(t, mw, "/api/jobs", ""))
}

func TestRequireSessionOpenPaths(t *testing.T) {
	sessions, _ := sessionFixture(t)
	mw := RequireSession(sessions, true)

	assert.Equal(t, http.StatusOK, invoke(t, mw, "/api/login", ""))
	assert.Equal(t, http.StatusOK, invoke(t, mw, "/health/live", ""))
	assert.Equal(t, http.StatusOK, invoke(t, mw, "/", ""))
}

func TestRequireSessionRejectsMissingOrBadToken(t *testing.T) {
	sessions, _ := sessionFixture(t)
	mw := RequireSession(sessions, true)

	assert.Equal(t, http.StatusUnauthorized, invoke(t, mw, "/api/jobs", ""))
	assert.Equal(t, http.StatusUnauthorized, invoke(t, mw, "/api/jobs", "forged-token"))
}

func TestRequireSessionAcceptsValidToken(t *testing.T) {
	sessions, token := sessionFixture(t)
	mw := RequireSession(sessions, true)

	assert.Equal(t, http.StatusOK, invoke(t, mw, "/api/jobs", token))
}
