// service/group_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/model"
	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
	"github.com/dev-mohitbeniwal/backoffice/util"
)

const EventGroupCreated = "group.created"

// IGroupService defines the interface for group operations
type IGroupService interface {
	CreateGroup(ctx context.Context, newGroup model.NewGroup) (*model.Group, error)
	GetGroupFormData(ctx context.Context, parentID, userSearch string) (*model.GroupFormData, error)
	GetGroup(ctx context.Context, groupID string) (*model.Group, error)
	ListChildren(ctx context.Context, groupID string) ([]*model.Group, error)
	ListDescendants(ctx context.Context, groupID string) ([]*model.GroupNode, error)
	IsParentOfGroup(ctx context.Context, userID, groupID string) (bool, error)
	VerifyUserInGroup(ctx context.Context, userID, groupID string) (bool, error)
	CanManageGroup(ctx context.Context, userID, groupID string) (bool, error)
	SyncGraph(ctx context.Context) error
}

// GroupService handles business logic for group operations
type GroupService struct {
	groupStore      GroupStore
	groupGraph      GroupGraph
	roleStore       RoleStore
	userStore       UserStore
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus

	createGroup engine.Handler[model.NewGroup, *model.Group]
	formData    engine.Handler[groupFormQuery, *model.GroupFormData]
}

type groupFormQuery struct {
	parentID   string
	userSearch string
}

var _ IGroupService = &GroupService{}

// NewGroupService wires the write paths behind gate. groupGraph may be nil, in which case
// descendants are walked in Mongo.
func NewGroupService(groupStore GroupStore, groupGraph GroupGraph, roleStore RoleStore, userStore UserStore, gate *engine.Gate, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *GroupService {
	service := &GroupService{
		groupStore:      groupStore,
		groupGraph:      groupGraph,
		roleStore:       roleStore,
		userStore:       userStore,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	writeGroup := []string{model.PermissionWriteGroup}
	service.createGroup = engine.Authorize(gate, writeGroup, service.doCreateGroup)
	service.formData = engine.Authorize(gate, writeGroup, service.doGetGroupFormData)

	eventBus.Subscribe(EventGroupCreated, service.handleGroupCreated)

	return service
}

func (s *GroupService) handleGroupCreated(ctx context.Context, event util.Event) error {
	group := event.Payload.(model.Group)
	logger.Info("Group created event received", zap.String("groupID", group.ID))

	if s.groupGraph != nil {
		if err := s.groupGraph.SyncGroup(ctx, group); err != nil {
			logger.Error("Failed to sync group graph", zap.Error(err), zap.String("groupID", group.ID))
			return err
		}
	}

	if err := s.notificationSvc.NotifyGroupChange(ctx, "created", group); err != nil {
		logger.Warn("Failed to send group creation notification", zap.Error(err), zap.String("groupID", group.ID))
	}
	return nil
}

// CanManageGroup is true when the user created the group or belongs to it.
func (s *GroupService) CanManageGroup(ctx context.Context, userID, groupID string) (bool, error) {
	isParent, err := s.groupStore.IsParentOfGroup(ctx, userID, groupID)
	if err != nil {
		return false, err
	}
	if isParent {
		return true, nil
	}
	return s.groupStore.VerifyUserInGroup(ctx, userID, groupID)
}

func (s *GroupService) IsParentOfGroup(ctx context.Context, userID, groupID string) (bool, error) {
	return s.groupStore.IsParentOfGroup(ctx, userID, groupID)
}

func (s *GroupService) VerifyUserInGroup(ctx context.Context, userID, groupID string) (bool, error) {
	return s.groupStore.VerifyUserInGroup(ctx, userID, groupID)
}

// requireManage returns the caller when it may manage groupID.
func (s *GroupService) requireManage(ctx context.Context, groupID string) (string, error) {
	userID, ok := engine.UserIDFromContext(ctx)
	if !ok {
		return "", echo_errors.ErrUnauthenticated
	}
	allowed, err := s.CanManageGroup(ctx, userID, groupID)
	if err != nil {
		return "", err
	}
	if !allowed {
		logger.Info("Group access denied", zap.String("userID", userID), zap.String("groupID", groupID))
		return "", echo_errors.ErrForbidden
	}
	return userID, nil
}

// CreateGroup creates a child of newGroup.Parent. The caller needs WRITE_GROUP and must
// be able to manage the parent.
func (s *GroupService) CreateGroup(ctx context.Context, newGroup model.NewGroup) (*model.Group, error) {
	return s.createGroup(ctx, newGroup)
}

func (s *GroupService) doCreateGroup(ctx context.Context, newGroup model.NewGroup) (*model.Group, error) {
	start := time.Now()

	creatorID, err := s.requireManage(ctx, newGroup.Parent)
	if err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateNewGroup(newGroup); err != nil {
		return nil, err
	}
	if _, err := s.groupStore.GetGroup(ctx, newGroup.Parent); err != nil {
		return nil, err
	}

	group, err := s.groupStore.CreateGroup(ctx, model.Group{
		Name:        newGroup.Name,
		Description: newGroup.Description,
		Parent:      newGroup.Parent,
		RoleIDs:     newGroup.RoleIDs,
		UserIDs:     newGroup.UserIDs,
		CreatedBy:   creatorID,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Group created",
		zap.String("groupID", group.ID),
		zap.String("parent", group.Parent),
		zap.Duration("duration", time.Since(start)))

	s.eventBus.Publish(context.WithoutCancel(ctx), EventGroupCreated, *group)
	return group, nil
}

// GetGroupFormData returns what the create form under parentID offers: the parent's roles
// and the users matching userSearch.
func (s *GroupService) GetGroupFormData(ctx context.Context, parentID, userSearch string) (*model.GroupFormData, error) {
	return s.formData(ctx, groupFormQuery{parentID: parentID, userSearch: userSearch})
}

func (s *GroupService) doGetGroupFormData(ctx context.Context, q groupFormQuery) (*model.GroupFormData, error) {
	if _, err := s.requireManage(ctx, q.parentID); err != nil {
		return nil, err
	}

	var (
		parent *model.Group
		roles  []*model.Role
		users  = make([]*model.UserOption, 0)
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		parent, err = s.groupStore.GetGroup(gctx, q.parentID)
		return err
	})
	g.Go(func() error {
		var err error
		roles, err = s.roleStore.GetRolesOfGroups(gctx, []string{q.parentID})
		return err
	})
	if q.userSearch != "" {
		g.Go(func() error {
			var err error
			users, err = s.userStore.SearchUsers(gctx, q.userSearch)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.GroupFormData{Parent: parent, Roles: roles, Users: users}, nil
}

func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*model.Group, error) {
	return s.groupStore.GetGroup(ctx, groupID)
}

func (s *GroupService) ListChildren(ctx context.Context, groupID string) ([]*model.Group, error) {
	return s.groupStore.ListChildren(ctx, groupID)
}

// SyncGraph copies every Mongo group into the graph. It is a no-op without a graph.
func (s *GroupService) SyncGraph(ctx context.Context) error {
	if s.groupGraph == nil {
		return nil
	}
	groups, err := s.groupStore.ListAllGroups(ctx)
	if err != nil {
		return err
	}
	return s.groupGraph.SyncGroups(ctx, groups)
}

// ListDescendants returns every group below groupID, nearest first.
func (s *GroupService) ListDescendants(ctx context.Context, groupID string) ([]*model.GroupNode, error) {
	if _, err := s.groupStore.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	if s.groupGraph != nil {
		return s.groupGraph.ListDescendants(ctx, groupID)
	}

	nodes := make([]*model.GroupNode, 0)
	seen := map[string]bool{groupID: true}
	frontier := []string{groupID}
	for depth := 1; len(frontier) > 0; depth++ {
		var next []string
		for _, parentID := range frontier {
			children, err := s.groupStore.ListChildren(ctx, parentID)
			if err != nil {
				return nil, err
			}
			for _, child := range children {
				if seen[child.ID] {
					continue
				}
				seen[child.ID] = true
				nodes = append(nodes, &model.GroupNode{ID: child.ID, Name: child.Name, Parent: child.Parent, Depth: depth})
				next = append(next, child.ID)
			}
		}
		frontier = next
	}
	return nodes, nil
}
