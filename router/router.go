// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/backoffice/controller"
	"github.com/dev-mohitbeniwal/backoffice/middleware"
	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
)

func SetupRouter(
	controllers *controller.Controllers,
	sessions middleware.SessionResolver,
	gate *engine.Gate,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	router.GET("/metrics", middleware.MetricsHandler())

	api := router.Group("/api/v1")

	public := api.Group("", middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	controllers.Auth.RegisterRoutes(public)

	settings := api.Group("/settings",
		middleware.SessionAuth(sessions),
		middleware.RateLimiter(rateLimitRequests, rateLimitDuration))
	controllers.Settings.RegisterRoutes(settings)
	controllers.User.RegisterRoutes(settings, gate)
	controllers.Group.RegisterRoutes(settings, gate)
	controllers.Role.RegisterRoutes(settings, gate)
	controllers.Permission.RegisterRoutes(settings, gate)
	controllers.ActionHistory.RegisterRoutes(settings, gate)

	return router
}
