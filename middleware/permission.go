// middleware/permission.go
package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
)

// RequirePermission lets the request through only when the caller holds every permission
// in required. Denied requests never reach the handler.
func RequirePermission(gate *engine.Gate, required ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, decision, err := gate.Check(c.Request.Context(), required...)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, echo_errors.ErrUnauthenticated):
			authzDeniedTotal.WithLabelValues(c.FullPath(), "unauthenticated").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		case errors.Is(err, echo_errors.ErrForbidden):
			authzDeniedTotal.WithLabelValues(c.FullPath(), "forbidden").Inc()
			logger.Info("Permission denied",
				zap.String("userID", userID),
				zap.String("path", c.Request.URL.Path),
				zap.String("reason", decision.Reason))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden", "missing": decision.Missing})
		default:
			logger.Error("Permission check failed", zap.Error(err), zap.String("userID", userID))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}

type GroupAccessChecker interface {
	CanManageGroup(ctx context.Context, userID, groupID string) (bool, error)
}

// RequireGroupAccess rejects callers that neither created nor belong to the group named
// by the route parameter param.
func RequireGroupAccess(checker GroupAccessChecker, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := engine.UserIDFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		groupID := c.Param(param)
		allowed, err := checker.CanManageGroup(c.Request.Context(), userID, groupID)
		if err != nil {
			logger.Error("Group access check failed", zap.Error(err), zap.String("groupID", groupID))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if !allowed {
			authzDeniedTotal.WithLabelValues(c.FullPath(), "group").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
