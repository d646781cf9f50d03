// service/stores.go
package service

import (
	"context"

	"github.com/dev-mohitbeniwal/backoffice/model"
)

// The persistence surface each service needs. The dao package implements all of them.

type UserStore interface {
	CreateUser(ctx context.Context, user model.User) (string, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	ListUsers(ctx context.Context, opts model.UserListOptions) ([]*model.User, error)
	CountUsers(ctx context.Context, searchText string) (int64, error)
	SearchUsers(ctx context.Context, searchText string) ([]*model.UserOption, error)
}

type GroupStore interface {
	CreateGroup(ctx context.Context, group model.Group) (*model.Group, error)
	GetGroup(ctx context.Context, groupID string) (*model.Group, error)
	IsParentOfGroup(ctx context.Context, userID, groupID string) (bool, error)
	VerifyUserInGroup(ctx context.Context, userID, groupID string) (bool, error)
	ListChildren(ctx context.Context, parentID string) ([]*model.Group, error)
	ListAllGroups(ctx context.Context) ([]*model.Group, error)
}

type GroupGraph interface {
	SyncGroup(ctx context.Context, group model.Group) error
	SyncGroups(ctx context.Context, groups []*model.Group) error
	ListDescendants(ctx context.Context, groupID string) ([]*model.GroupNode, error)
}

type RoleStore interface {
	CreateRole(ctx context.Context, role model.Role) (*model.Role, error)
	UpdateRolePermissions(ctx context.Context, roleID string, permissions []string) (*model.Role, error)
	GetRole(ctx context.Context, roleID string) (*model.Role, error)
	ListRoles(ctx context.Context) ([]*model.Role, error)
	GetRolesOfGroups(ctx context.Context, groupIDs []string) ([]*model.Role, error)
}

// RoleRetriever yields the roles granted to a user through group membership.
type RoleRetriever interface {
	RetrieveUserRoles(ctx context.Context, userID string) ([]*model.Role, error)
}
