package controller_test

import (
	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
	mock_service "github.com/dev-mohitbeniwal/backoffice/test/service_mock"
)

func setupRouter(userID string) (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/", func(c *gin.Context) {
		if userID == "" {
			return
		}
		c.Set(engine.UserIDKey, userID)
		c.Request = c.Request.WithContext(engine.ContextWithUserID(c.Request.Context(), userID))
	})
	return r, api
}

func newGate(permissions *mock_service.MockIPermissionService) *engine.Gate {
	return engine.NewGate(engine.NewPermissionEvaluator(), permissions)
}
