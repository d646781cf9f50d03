package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/backoffice/controller"
	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/model"
	pdp_model "github.com/dev-mohitbeniwal/backoffice/pdp/model"
	mock_service "github.com/dev-mohitbeniwal/backoffice/test/service_mock"
)

func TestUserController(t *testing.T) {
	logger.InitLogger("")
	defer logger.Sync()

	ctrl := gomock.NewController(t)

	mockUserService := mock_service.NewMockIUserService(ctrl)
	mockPermissionService := mock_service.NewMockIPermissionService(ctrl)
	router, api := setupRouter("u1")
	controller.NewUserController(mockUserService).RegisterRoutes(api, newGate(mockPermissionService))

	t.Run("ListUsers_Success", func(t *testing.T) {
		mockPermissionService.EXPECT().
			GetUserPermissions(gomock.Any(), "u1").
			Return(pdp_model.NewPermissionSet(model.PermissionReadUser), nil)
		mockUserService.EXPECT().
			ListUsers(gomock.Any(), "john", 10, 2).
			Return(&model.UserPage{Users: []*model.User{{ID: "u7", Username: "Johnny"}}, Total: 21, PageSize: 10, PageIndex: 2}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/users?username=john&pageSize=10&pageIndex=2", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var page model.UserPage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, int64(21), page.Total)
		assert.Equal(t, "Johnny", page.Users[0].Username)
	})

	t.Run("ListUsers_Forbidden", func(t *testing.T) {
		mockPermissionService.EXPECT().
			GetUserPermissions(gomock.Any(), "u1").
			Return(pdp_model.NewPermissionSet(model.PermissionReadGroup), nil)
		mockUserService.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/users", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("CreateUser_Conflict", func(t *testing.T) {
		mockPermissionService.EXPECT().
			GetUserPermissions(gomock.Any(), "u1").
			Return(pdp_model.NewPermissionSet(model.PermissionWriteUser), nil)
		mockUserService.EXPECT().
			CreateUser(gomock.Any(), model.NewUser{Username: "alice", Email: "alice@example.com", Password: "correct-horse"}).
			Return(nil, echo_errors.ErrUserConflict)

		body := strings.NewReader(`{"username":"alice","email":"alice@example.com","password":"correct-horse"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/users", body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("CreateUser_InvalidJSON", func(t *testing.T) {
		mockPermissionService.EXPECT().
			GetUserPermissions(gomock.Any(), "u1").
			Return(pdp_model.NewPermissionSet(model.PermissionWriteUser), nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"username":`))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetProfile_Success", func(t *testing.T) {
		mockUserService.EXPECT().
			GetUserProfile(gomock.Any(), "u1").
			Return(&model.UserProfile{ID: "u1", Username: "alice"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/profile", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"alice"`)
	})
}

func TestUserController_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockUserService := mock_service.NewMockIUserService(ctrl)
	router, api := setupRouter("")
	controller.NewUserController(mockUserService).RegisterRoutes(api, newGate(mock_service.NewMockIPermissionService(ctrl)))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/users", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
