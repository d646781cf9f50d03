// controller/controllers.go
package controller

import "github.com/dev-mohitbeniwal/backoffice/service"

type Controllers struct {
	Auth          *AuthController
	User          *UserController
	Group         *GroupController
	Role          *RoleController
	Permission    *PermissionController
	ActionHistory *ActionHistoryController
	Settings      *SettingsController
}

func InitializeControllers(services *service.Services, cookieSecure bool) *Controllers {
	return &Controllers{
		Auth:          NewAuthController(services.Auth, cookieSecure),
		User:          NewUserController(services.User),
		Group:         NewGroupController(services.Group),
		Role:          NewRoleController(services.Role),
		Permission:    NewPermissionController(services.Permission),
		ActionHistory: NewActionHistoryController(services.ActionHistory),
		Settings:      NewSettingsController(),
	}
}
