// service/permission_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/model"
	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/backoffice/pdp/model"
)

// IPermissionService resolves effective permissions and exposes the catalog.
type IPermissionService interface {
	GetUserPermissions(ctx context.Context, userID string) (pdp_model.PermissionSet, error)
	ListPermissionsByModule(ctx context.Context) []model.ModulePermissions
}

type PermissionService struct {
	roleRetriever RoleRetriever
	// Concurrent lookups for the same user share one query. Nothing is kept afterwards.
	inflight singleflight.Group
}

var _ IPermissionService = &PermissionService{}
var _ engine.PermissionResolver = &PermissionService{}

func NewPermissionService(roleRetriever RoleRetriever) *PermissionService {
	return &PermissionService{roleRetriever: roleRetriever}
}

// GetUserPermissions unions the permissions of every role reachable from the user's groups.
// It reads current state on every call. Concurrent callers for one user share a lookup that
// is detached from any single request, and each caller stops waiting when its own ctx ends.
func (s *PermissionService) GetUserPermissions(ctx context.Context, userID string) (pdp_model.PermissionSet, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.inflight.DoChan(userID, func() (interface{}, error) {
		return s.resolve(shared, userID)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			logger.Debug("Shared in-flight permission lookup", zap.String("userID", userID))
		}
		return res.Val.(pdp_model.PermissionSet), nil
	}
}

func (s *PermissionService) resolve(ctx context.Context, userID string) (pdp_model.PermissionSet, error) {
	start := time.Now()
	roles, err := s.roleRetriever.RetrieveUserRoles(ctx, userID)
	if err != nil {
		return nil, err
	}

	permissions := engine.ConvertRolesToPermissions(roles)
	logger.Debug("Resolved user permissions",
		zap.String("userID", userID),
		zap.Int("roles", len(roles)),
		zap.Strings("permissions", permissions.Sorted()),
		zap.Duration("duration", time.Since(start)))
	return permissions, nil
}

func (s *PermissionService) ListPermissionsByModule(ctx context.Context) []model.ModulePermissions {
	return engine.GroupPermissionsByModule(model.PermissionCatalog)
}
