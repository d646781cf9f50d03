// controller/group_controller.go
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

type GroupController struct {
	groupService service.IGroupService
}

func NewGroupController(groupService service.IGroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// RegisterRoutes registers the group routes. Create routes are gated inside the service.
func (gc *GroupController) RegisterRoutes(r *gin.RouterGroup, gate *engine.Gate) {
	groups := r.Group("/groups")
	{
		groups.GET("", middleware.RequirePermission(gate, model.PermissionReadGroup), gc.ListRootGroups)
		groups.GET("/:id/create", gc.GetCreateForm)
		groups.POST("/:id/create", gc.CreateGroup)

		scoped := groups.Group("/:id",
			middleware.RequirePermission(gate, model.PermissionReadGroup),
			middleware.RequireGroupAccess(gc.groupService, "id"))
		scoped.GET("", gc.GetGroup)
		scoped.GET("/children", gc.ListChildren)
		scoped.GET("/descendants", gc.ListDescendants)
	}
}

// GetCreateForm endpoint
func (gc *GroupController) GetCreateForm(c *gin.Context) {
	data, err := gc.groupService.GetGroupFormData(c.Request.Context(), c.Param("id"), c.Query("users"))
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// CreateGroup endpoint
func (gc *GroupController) CreateGroup(c *gin.Context) {
	var newGroup model.NewGroup
	if err := c.ShouldBindJSON(&newGroup); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid group data", echo_errors.ErrInvalidGroupData)
		return
	}
	newGroup.Parent = c.Param("id")

	group, err := gc.groupService.CreateGroup(c.Request.Context(), newGroup)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetGroup endpoint
func (gc *GroupController) GetGroup(c *gin.Context) {
	group, err := gc.groupService.GetGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// ListRootGroups endpoint
func (gc *GroupController) ListRootGroups(c *gin.Context) {
	groups, err := gc.groupService.ListChildren(c.Request.Context(), "")
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// ListChildren endpoint
func (gc *GroupController) ListChildren(c *gin.Context) {
	groups, err := gc.groupService.ListChildren(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// ListDescendants endpoint
func (gc *GroupController) ListDescendants(c *gin.Context) {
	nodes, err := gc.groupService.ListDescendants(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, nodes)
}
