package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	"github.com/dev-mohitbeniwal/backoffice/model"
	"github.com/dev-mohitbeniwal/backoffice/service"
	test_mock "github.com/dev-mohitbeniwal/backoffice/test/mock"
	"github.com/dev-mohitbeniwal/backoffice/util"
)

func newRoleService(store *test_mock.MockRoleStore) *service.RoleService {
	return service.NewRoleService(store, util.NewValidationUtil(), util.NewNotificationService("test@example.com"))
}

func TestRoleService_CreateRole(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate permissions are collapsed", func(t *testing.T) {
		store := new(test_mock.MockRoleStore)
		store.On("CreateRole", ctx, model.Role{
			Name:        "Support",
			Description: "Support desk",
			Permissions: []string{model.PermissionReadUser, model.PermissionReadGroup},
		}).Return(&model.Role{ID: "r1", Name: "Support"}, nil)

		role, err := newRoleService(store).CreateRole(ctx, model.NewRole{
			Name:        "Support",
			Description: "Support desk",
			Permissions: []string{model.PermissionReadUser, model.PermissionReadGroup, model.PermissionReadUser},
		})

		require.NoError(t, err)
		assert.Equal(t, "r1", role.ID)
		store.AssertExpectations(t)
	})

	t.Run("unknown permission", func(t *testing.T) {
		store := new(test_mock.MockRoleStore)

		_, err := newRoleService(store).CreateRole(ctx, model.NewRole{
			Name:        "Support",
			Description: "Support desk",
			Permissions: []string{"DELETE_EVERYTHING"},
		})

		assert.ErrorIs(t, err, echo_errors.ErrInvalidFormData)
		store.AssertNotCalled(t, "CreateRole", mock.Anything, mock.Anything)
	})
}

func TestRoleService_UpdateRolePermissions(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the set", func(t *testing.T) {
		store := new(test_mock.MockRoleStore)
		store.On("UpdateRolePermissions", ctx, "r1", []string{model.PermissionWriteGroup}).
			Return(&model.Role{ID: "r1", Permissions: []string{model.PermissionWriteGroup}}, nil)

		role, err := newRoleService(store).UpdateRolePermissions(ctx, "r1", []string{model.PermissionWriteGroup})

		require.NoError(t, err)
		assert.Equal(t, []string{model.PermissionWriteGroup}, role.Permissions)
	})

	t.Run("missing role", func(t *testing.T) {
		store := new(test_mock.MockRoleStore)
		store.On("UpdateRolePermissions", ctx, "nope", []string{}).Return(nil, echo_errors.ErrRoleNotFound)

		_, err := newRoleService(store).UpdateRolePermissions(ctx, "nope", nil)

		assert.ErrorIs(t, err, echo_errors.ErrRoleNotFound)
	})
}
