// service/role_service.go
package service

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/model"
	"github.com/dev-mohitbeniwal/backoffice/util"
)

// IRoleService defines the interface for role operations
type IRoleService interface {
	CreateRole(ctx context.Context, newRole model.NewRole) (*model.Role, error)
	UpdateRolePermissions(ctx context.Context, roleID string, permissions []string) (*model.Role, error)
	GetRole(ctx context.Context, roleID string) (*model.Role, error)
	ListRoles(ctx context.Context) ([]*model.Role, error)
}

type RoleService struct {
	roleStore       RoleStore
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
}

var _ IRoleService = &RoleService{}

func NewRoleService(roleStore RoleStore, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService) *RoleService {
	return &RoleService{
		roleStore:       roleStore,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
	}
}

func (s *RoleService) CreateRole(ctx context.Context, newRole model.NewRole) (*model.Role, error) {
	if err := s.validationUtil.ValidateNewRole(newRole); err != nil {
		return nil, err
	}

	role, err := s.roleStore.CreateRole(ctx, model.Role{
		Name:        newRole.Name,
		Description: newRole.Description,
		Permissions: dedupe(newRole.Permissions),
	})
	if err != nil {
		return nil, err
	}

	if err := s.notificationSvc.NotifyRoleChange(ctx, "created", *role); err != nil {
		logger.Warn("Failed to send role creation notification", zap.Error(err), zap.String("roleID", role.ID))
	}
	return role, nil
}

// UpdateRolePermissions replaces the role's permissions. Members see the change on their
// next request since permissions are resolved per request.
func (s *RoleService) UpdateRolePermissions(ctx context.Context, roleID string, permissions []string) (*model.Role, error) {
	if err := s.validationUtil.ValidatePermissions(permissions); err != nil {
		return nil, err
	}

	role, err := s.roleStore.UpdateRolePermissions(ctx, roleID, dedupe(permissions))
	if err != nil {
		return nil, err
	}

	if err := s.notificationSvc.NotifyRoleChange(ctx, "updated", *role); err != nil {
		logger.Warn("Failed to send role update notification", zap.Error(err), zap.String("roleID", role.ID))
	}
	return role, nil
}

func (s *RoleService) GetRole(ctx context.Context, roleID string) (*model.Role, error) {
	return s.roleStore.GetRole(ctx, roleID)
}

func (s *RoleService) ListRoles(ctx context.Context) ([]*model.Role, error) {
	return s.roleStore.ListRoles(ctx)
}

// dedupe keeps the first occurrence of each value.
func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
