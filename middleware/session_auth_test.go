package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
)

type stubSessions map[string]string

func (s stubSessions) GetUserID(ctx context.Context, token string) (string, error) {
	if token == "broken" {
		return "", errors.New("redis unavailable")
	}
	userID, ok := s[token]
	if !ok {
		return "", echo_errors.ErrUnauthenticated
	}
	return userID, nil
}

func sessionRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", SessionAuth(stubSessions{"good": "u1"}), func(c *gin.Context) {
		fromCtx, _ := engine.UserIDFromContext(c.Request.Context())
		c.String(http.StatusOK, c.GetString(engine.UserIDKey)+"|"+fromCtx)
	})
	return r
}

func TestSessionAuth(t *testing.T) {
	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good"})
		w := httptest.NewRecorder()

		sessionRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1|u1", w.Body.String())
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()

		sessionRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no token", func(t *testing.T) {
		w := httptest.NewRecorder()

		sessionRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "expired"})
		w := httptest.NewRecorder()

		sessionRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("backend failure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "broken"})
		w := httptest.NewRecorder()

		sessionRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
