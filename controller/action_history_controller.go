// controller/action_history_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/backoffice/middleware"
	"github.com/dev-mohitbeniwal/backoffice/model"
	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
	"github.com/dev-mohitbeniwal/backoffice/service"
	"github.com/dev-mohitbeniwal/backoffice/util"
	helper_util "github.com/dev-mohitbeniwal/backoffice/util/helper"
)

type ActionHistoryController struct {
	actionHistoryService service.IActionHistoryService
}

func NewActionHistoryController(actionHistoryService service.IActionHistoryService) *ActionHistoryController {
	return &ActionHistoryController{actionHistoryService: actionHistoryService}
}

// RegisterRoutes registers the action history route
func (hc *ActionHistoryController) RegisterRoutes(r *gin.RouterGroup, gate *engine.Gate) {
	r.GET("/action-history", middleware.RequirePermission(gate, model.PermissionReadActionHistory), hc.ListActionsHistory)
}

// ListActionsHistory endpoint
func (hc *ActionHistoryController) ListActionsHistory(c *gin.Context) {
	pageSize, pageIndex := helper_util.GetPaginationParams(c)
	username := strings.TrimSpace(c.Query("username"))

	page, err := hc.actionHistoryService.ListActionsHistory(c.Request.Context(), username, pageSize, pageIndex)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
