package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema_rental/internal/utils"
)

const testSecret = "unit-test-secret"

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/cinemas", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var subject string
	next := func(c echo.Context) error {
		if s, ok := c.Get("subject").(string); ok {
			subject = s
		}
		return c.NoContent(http.StatusOK)
	}
	require.NoError(t, JWTAuth(testSecret)(next)(c))
	return rec, subject
}

func TestJWTAuth(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		rec, _ := runJWT(t, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		rec, _ := runJWT(t, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec, _ := runJWT(t, "Bearer not.a.jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		foreign, err := utils.NewAccessToken("other-secret", "admin@example.com", 60)
		require.NoError(t, err)
		rec, _ := runJWT(t, "Bearer "+foreign.Token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		stale, err := utils.NewAccessToken(testSecret, "admin@example.com", -5)
		require.NoError(t, err)
		rec, _ := runJWT(t, "Bearer "+stale.Token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes and exposes the subject", func(t *testing.T) {
		access, err := utils.NewAccessToken(testSecret, "admin@example.com", 60)
		require.NoError(t, err)
		rec, subject := runJWT(t, "Bearer "+access.Token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin@example.com", subject)
	})
}
