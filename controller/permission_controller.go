// controller/permission_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/backoffice/middleware"
	"github.com/dev-mohitbeniwal/backoffice/model"
	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
	"github.com/dev-mohitbeniwal/backoffice/service"
	"github.com/dev-mohitbeniwal/backoffice/util"
)

type PermissionController struct {
	permissionService service.IPermissionService
}

func NewPermissionController(permissionService service.IPermissionService) *PermissionController {
	return &PermissionController{permissionService: permissionService}
}

// RegisterRoutes registers the permission catalog routes
func (pc *PermissionController) RegisterRoutes(r *gin.RouterGroup, gate *engine.Gate) {
	permissions := r.Group("/permissions")
	{
		permissions.GET("", middleware.RequirePermission(gate, model.PermissionReadRole), pc.ListPermissions)
		permissions.GET("/me", pc.GetMyPermissions)
	}
}

// ListPermissions endpoint
func (pc *PermissionController) ListPermissions(c *gin.Context) {
	c.JSON(http.StatusOK, pc.permissionService.ListPermissionsByModule(c.Request.Context()))
}

// GetMyPermissions endpoint
func (pc *PermissionController) GetMyPermissions(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	permissions, err := pc.permissionService.GetUserPermissions(c.Request.Context(), userID)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"permissions": permissions})
}
