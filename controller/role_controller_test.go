package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/backoffice/controller"
	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	"github.com/dev-mohitbeniwal/backoffice/model"
	pdp_model "github.com/dev-mohitbeniwal/backoffice/pdp/model"
	mock_service "github.com/dev-mohitbeniwal/backoffice/test/service_mock"
)

func TestRoleController(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRoleService := mock_service.NewMockIRoleService(ctrl)
	mockPermissionService := mock_service.NewMockIPermissionService(ctrl)
	router, api := setupRouter("u1")
	gate := newGate(mockPermissionService)
	controller.NewRoleController(mockRoleService).RegisterRoutes(api, gate)
	controller.NewPermissionController(mockPermissionService).RegisterRoutes(api, gate)

	t.Run("UpdateRolePermissions_Success", func(t *testing.T) {
		mockPermissionService.EXPECT().
			GetUserPermissions(gomock.Any(), "u1").
			Return(pdp_model.NewPermissionSet(model.PermissionWriteRole), nil)
		mockRoleService.EXPECT().
			UpdateRolePermissions(gomock.Any(), "r1", []string{model.PermissionReadUser}).
			Return(&model.Role{ID: "r1", Permissions: []string{model.PermissionReadUser}}, nil)

		body := strings.NewReader(`{"permissions":["READ_USER"]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/roles/r1/permissions", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UpdateRolePermissions_ReadOnlyCaller", func(t *testing.T) {
		mockPermissionService.EXPECT().
			GetUserPermissions(gomock.Any(), "u1").
			Return(pdp_model.NewPermissionSet(model.PermissionReadRole), nil)

		body := strings.NewReader(`{"permissions":["ROOT"]}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/roles/r1/permissions", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), model.PermissionWriteRole)
	})

	t.Run("GetRole_NotFound", func(t *testing.T) {
		mockPermissionService.EXPECT().
			GetUserPermissions(gomock.Any(), "u1").
			Return(pdp_model.NewPermissionSet(model.PermissionReadRole), nil)
		mockRoleService.EXPECT().GetRole(gomock.Any(), "nope").Return(nil, echo_errors.ErrRoleNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/roles/nope", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetMyPermissions", func(t *testing.T) {
		mockPermissionService.EXPECT().
			GetUserPermissions(gomock.Any(), "u1").
			Return(pdp_model.NewPermissionSet(model.PermissionReadRole, model.PermissionReadUser), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/permissions/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"permissions":["READ_ROLE","READ_USER"]}`, w.Body.String())
	})
}
