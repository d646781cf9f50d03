// controller/settings_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/backoffice/model"
)

type SettingsController struct{}

func NewSettingsController() *SettingsController {
	return &SettingsController{}
}

func (sc *SettingsController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/navigation", sc.GetNavigation)
}

// GetNavigation endpoint
func (sc *SettingsController) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, model.SettingsNavigation)
}
