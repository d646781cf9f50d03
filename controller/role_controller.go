// controller/role_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	"github.com/dev-mohitbeniwal/backoffice/middleware"
	"github.com/dev-mohitbeniwal/backoffice/model"
	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
	"github.com/dev-mohitbeniwal/backoffice/service"
	"github.com/dev-mohitbeniwal/backoffice/util"
)

type RoleController struct {
	roleService service.IRoleService
}

func NewRoleController(roleService service.IRoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

type rolePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

// RegisterRoutes registers the role routes
func (rc *RoleController) RegisterRoutes(r *gin.RouterGroup, gate *engine.Gate) {
	roles := r.Group("/roles")
	{
		roles.GET("", middleware.RequirePermission(gate, model.PermissionReadRole), rc.ListRoles)
		roles.GET("/:id", middleware.RequirePermission(gate, model.PermissionReadRole), rc.GetRole)
		roles.POST("", middleware.RequirePermission(gate, model.PermissionWriteRole), rc.CreateRole)
		roles.PUT("/:id/permissions", middleware.RequirePermission(gate, model.PermissionWriteRole), rc.UpdateRolePermissions)
	}
}

// CreateRole endpoint
func (rc *RoleController) CreateRole(c *gin.Context) {
	var newRole model.NewRole
	if err := c.ShouldBindJSON(&newRole); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role data", echo_errors.ErrInvalidRoleData)
		return
	}

	role, err := rc.roleService.CreateRole(c.Request.Context(), newRole)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, role)
}

// UpdateRolePermissions endpoint
func (rc *RoleController) UpdateRolePermissions(c *gin.Context) {
	var req rolePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role data", echo_errors.ErrInvalidRoleData)
		return
	}

	role, err := rc.roleService.UpdateRolePermissions(c.Request.Context(), c.Param("id"), req.Permissions)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, role)
}

// GetRole endpoint
func (rc *RoleController) GetRole(c *gin.Context) {
	role, err := rc.roleService.GetRole(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, role)
}

// ListRoles endpoint
func (rc *RoleController) ListRoles(c *gin.Context) {
	roles, err := rc.roleService.ListRoles(c.Request.Context())
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, roles)
}
