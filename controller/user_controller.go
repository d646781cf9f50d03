// controller/user_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	"github.com/dev-mohitbeniwal/backoffice/middleware"
	"github.com/dev-mohitbeniwal/backoffice/model"
	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
	"github.com/dev-mohitbeniwal/backoffice/service"
	"github.com/dev-mohitbeniwal/backoffice/util"
	helper_util "github.com/dev-mohitbeniwal/backoffice/util/helper"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the profile and user management routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup, gate *engine.Gate) {
	r.GET("/profile", uc.GetProfile)

	users := r.Group("/users")
	{
		users.GET("", middleware.RequirePermission(gate, model.PermissionReadUser), uc.ListUsers)
		users.GET("/search", middleware.RequirePermission(gate, model.PermissionReadUser), uc.SearchUsers)
		users.POST("", middleware.RequirePermission(gate, model.PermissionWriteUser), uc.CreateUser)
	}
}

// GetProfile endpoint
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	profile, err := uc.userService.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// CreateUser endpoint
func (uc *UserController) CreateUser(c *gin.Context) {
	var newUser model.NewUser
	if err := c.ShouldBindJSON(&newUser); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", echo_errors.ErrInvalidUserData)
		return
	}

	createdUser, err := uc.userService.CreateUser(c.Request.Context(), newUser)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createdUser)
}

// ListUsers endpoint
func (uc *UserController) ListUsers(c *gin.Context) {
	pageSize, pageIndex := helper_util.GetPaginationParams(c)
	searchText := strings.TrimSpace(c.Query("username"))

	page, err := uc.userService.ListUsers(c.Request.Context(), searchText, pageSize, pageIndex)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// SearchUsers endpoint
func (uc *UserController) SearchUsers(c *gin.Context) {
	users, err := uc.userService.SearchUsers(c.Request.Context(), c.Query("query"))
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
