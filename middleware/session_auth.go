// middleware/session_auth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
)

// SessionCookie carries the signed session token.
const SessionCookie = "session"

type SessionResolver interface {
	GetUserID(ctx context.Context, token string) (string, error)
}

// SessionToken reads the session cookie, falling back to an Authorization bearer header.
func SessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	return strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
}

// SessionAuth attaches the signed-in user to the request or rejects it with 401.
func SessionAuth(sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userID, err := sessions.GetUserID(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, echo_errors.ErrUnauthenticated) {
				logger.Error("Failed to resolve session", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			logger.Debug("Session rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(engine.UserIDKey, userID)
		c.Request = c.Request.WithContext(engine.ContextWithUserID(c.Request.Context(), userID))
		c.Next()
	}
}
