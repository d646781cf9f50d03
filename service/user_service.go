// service/user_service.go
package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/model"
	"github.com/dev-mohitbeniwal/backoffice/util"
	helper_util "github.com/dev-mohitbeniwal/backoffice/util/helper"
)

// IUserService defines the interface for user operations
type IUserService interface {
	CreateUser(ctx context.Context, newUser model.NewUser) (*model.User, error)
	GetUserProfile(ctx context.Context, userID string) (*model.UserProfile, error)
	ListUsers(ctx context.Context, searchText string, pageSize, pageIndex int) (*model.UserPage, error)
	SearchUsers(ctx context.Context, searchText string) ([]*model.UserOption, error)
}

type UserService struct {
	userStore      UserStore
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IUserService = &UserService{}

func NewUserService(userStore UserStore, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *UserService {
	service := &UserService{
		userStore:      userStore,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}

	eventBus.Subscribe("user.created", func(ctx context.Context, event util.Event) error {
		user := event.Payload.(model.User)
		return notificationSvc.NotifyUserChange(ctx, "created", user)
	})

	return service
}

func (s *UserService) CreateUser(ctx context.Context, newUser model.NewUser) (*model.User, error) {
	if err := s.validationUtil.ValidateNewUser(newUser); err != nil {
		return nil, err
	}

	hash, err := HashPassword(newUser.Password)
	if err != nil {
		return nil, err
	}

	common := model.NewRecordCommonFields()
	user := model.User{
		ID:        common.ID,
		Username:  newUser.Username,
		Email:     strings.ToLower(strings.TrimSpace(newUser.Email)),
		Cities:    newUser.Cities,
		Status:    model.UserStatusActive,
		Services:  model.UserServices{Password: model.PasswordService{Bcrypt: hash}},
		CreatedAt: common.CreatedAt,
	}

	if _, err := s.userStore.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	user.Services = model.UserServices{}
	s.eventBus.Publish(context.WithoutCancel(ctx), "user.created", user)
	return &user, nil
}

func (s *UserService) GetUserProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	return s.userStore.GetUserProfile(ctx, userID)
}

// ListUsers counts first so the requested page can be clamped to the last one.
func (s *UserService) ListUsers(ctx context.Context, searchText string, pageSize, pageIndex int) (*model.UserPage, error) {
	start := time.Now()

	total, err := s.userStore.CountUsers(ctx, searchText)
	if err != nil {
		return nil, err
	}

	page := helper_util.GetPageSizeAndPageIndex(int(total), pageSize, pageIndex)
	sl := helper_util.GetSkipAndLimit(page)

	users, err := s.userStore.ListUsers(ctx, model.UserListOptions{
		SearchText: searchText,
		Skip:       sl.Skip,
		Limit:      sl.Limit,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Users page loaded",
		zap.Int64("total", total),
		zap.Int("pageIndex", page.PageIndex),
		zap.Duration("duration", time.Since(start)))

	return &model.UserPage{
		Users:     users,
		Total:     total,
		PageSize:  page.PageSize,
		PageIndex: page.PageIndex,
	}, nil
}

func (s *UserService) SearchUsers(ctx context.Context, searchText string) ([]*model.UserOption, error) {
	return s.userStore.SearchUsers(ctx, searchText)
}
