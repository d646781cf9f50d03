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

func TestGroupController(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockGroupService := mock_service.NewMockIGroupService(ctrl)
	mockPermissionService := mock_service.NewMockIPermissionService(ctrl)
	router, api := setupRouter("u1")
	controller.NewGroupController(mockGroupService).RegisterRoutes(api, newGate(mockPermissionService))

	readGroup := func() {
		mockPermissionService.EXPECT().
			GetUserPermissions(gomock.Any(), "u1").
			Return(pdp_model.NewPermissionSet(model.PermissionReadGroup), nil)
	}

	t.Run("CreateGroup_Success", func(t *testing.T) {
		mockGroupService.EXPECT().
			CreateGroup(gomock.Any(), model.NewGroup{Name: "Ops", Description: "Operations", Parent: "g1"}).
			Return(&model.Group{ID: "g2", Name: "Ops", Parent: "g1"}, nil)

		body := strings.NewReader(`{"name":"Ops","description":"Operations"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/groups/g1/create", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateGroup_Forbidden", func(t *testing.T) {
		mockGroupService.EXPECT().
			CreateGroup(gomock.Any(), gomock.Any()).
			Return(nil, echo_errors.ErrForbidden)

		body := strings.NewReader(`{"name":"Ops","description":"Operations"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/groups/g1/create", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("GetCreateForm_Success", func(t *testing.T) {
		mockGroupService.EXPECT().
			GetGroupFormData(gomock.Any(), "g1", "jo").
			Return(&model.GroupFormData{Parent: &model.Group{ID: "g1"}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/groups/g1/create?users=jo", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetGroup_Member", func(t *testing.T) {
		readGroup()
		mockGroupService.EXPECT().CanManageGroup(gomock.Any(), "u1", "g1").Return(true, nil)
		mockGroupService.EXPECT().GetGroup(gomock.Any(), "g1").Return(&model.Group{ID: "g1", Name: "Root"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/groups/g1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ListChildren_Outsider", func(t *testing.T) {
		readGroup()
		mockGroupService.EXPECT().CanManageGroup(gomock.Any(), "u1", "g9").Return(false, nil)
		mockGroupService.EXPECT().ListChildren(gomock.Any(), "g9").Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/groups/g9/children", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("ListDescendants_NotFound", func(t *testing.T) {
		readGroup()
		mockGroupService.EXPECT().CanManageGroup(gomock.Any(), "u1", "g1").Return(true, nil)
		mockGroupService.EXPECT().ListDescendants(gomock.Any(), "g1").Return(nil, echo_errors.ErrGroupNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/groups/g1/descendants", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListRootGroups_Success", func(t *testing.T) {
		readGroup()
		mockGroupService.EXPECT().ListChildren(gomock.Any(), "").Return([]*model.Group{{ID: "g1"}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/groups", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
