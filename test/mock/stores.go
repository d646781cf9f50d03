// test/mock/stores.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/backoffice/model"
	pdp_model "github.com/dev-mohitbeniwal/backoffice/pdp/model"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUser(ctx context.Context, user model.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserStore) GetUser(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserStore) GetUserProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserProfile), args.Error(1)
}

func (m *MockUserStore) ListUsers(ctx context.Context, opts model.UserListOptions) ([]*model.User, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserStore) CountUsers(ctx context.Context, searchText string) (int64, error) {
	args := m.Called(ctx, searchText)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) SearchUsers(ctx context.Context, searchText string) ([]*model.UserOption, error) {
	args := m.Called(ctx, searchText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserOption), args.Error(1)
}

type MockGroupStore struct {
	mock.Mock
}

func (m *MockGroupStore) CreateGroup(ctx context.Context, group model.Group) (*model.Group, error) {
	args := m.Called(ctx, group)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupStore) GetGroup(ctx context.Context, groupID string) (*model.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupStore) IsParentOfGroup(ctx context.Context, userID, groupID string) (bool, error) {
	args := m.Called(ctx, userID, groupID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupStore) VerifyUserInGroup(ctx context.Context, userID, groupID string) (bool, error) {
	args := m.Called(ctx, userID, groupID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupStore) ListChildren(ctx context.Context, parentID string) ([]*model.Group, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Group), args.Error(1)
}

func (m *MockGroupStore) ListAllGroups(ctx context.Context) ([]*model.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Group), args.Error(1)
}

type MockGroupGraph struct {
	mock.Mock
}

func (m *MockGroupGraph) SyncGroup(ctx context.Context, group model.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupGraph) SyncGroups(ctx context.Context, groups []*model.Group) error {
	args := m.Called(ctx, groups)
	return args.Error(0)
}

func (m *MockGroupGraph) ListDescendants(ctx context.Context, groupID string) ([]*model.GroupNode, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.GroupNode), args.Error(1)
}

type MockRoleStore struct {
	mock.Mock
}

func (m *MockRoleStore) CreateRole(ctx context.Context, role model.Role) (*model.Role, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleStore) UpdateRolePermissions(ctx context.Context, roleID string, permissions []string) (*model.Role, error) {
	args := m.Called(ctx, roleID, permissions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleStore) GetRole(ctx context.Context, roleID string) (*model.Role, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleStore) ListRoles(ctx context.Context) ([]*model.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Role), args.Error(1)
}

func (m *MockRoleStore) GetRolesOfGroups(ctx context.Context, groupIDs []string) ([]*model.Role, error) {
	args := m.Called(ctx, groupIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Role), args.Error(1)
}

type MockRoleRetriever struct {
	mock.Mock
}

func (m *MockRoleRetriever) RetrieveUserRoles(ctx context.Context, userID string) ([]*model.Role, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Role), args.Error(1)
}

// MockPermissionResolver is a mock implementation of engine.PermissionResolver
type MockPermissionResolver struct {
	mock.Mock
}

func (m *MockPermissionResolver) GetUserPermissions(ctx context.Context, userID string) (pdp_model.PermissionSet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pdp_model.PermissionSet), args.Error(1)
}

type MockSessionCache struct {
	mock.Mock
}

func (m *MockSessionCache) SetVerification(ctx context.Context, token string, verification model.Verification, ttl time.Duration) error {
	args := m.Called(ctx, token, verification, ttl)
	return args.Error(0)
}

func (m *MockSessionCache) GetVerification(ctx context.Context, token string) (*model.Verification, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Verification), args.Error(1)
}

func (m *MockSessionCache) IncrementVerificationAttempts(ctx context.Context, token string, ttl time.Duration) (int64, error) {
	args := m.Called(ctx, token, ttl)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionCache) DeleteVerification(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionCache) SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, userID, ttl)
	return args.Error(0)
}

func (m *MockSessionCache) GetSession(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionCache) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockVerificationMailer struct {
	mock.Mock
}

func (m *MockVerificationMailer) SendVerificationCode(ctx context.Context, user model.User, code string) error {
	args := m.Called(ctx, user, code)
	return args.Error(0)
}
