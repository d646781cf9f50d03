// dao/group_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/backoffice/audit"
	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/model"
	mongo_schema "github.com/dev-mohitbeniwal/backoffice/model/mongo"
	"github.com/dev-mohitbeniwal/backoffice/pdp/engine"
)

type GroupDAO struct {
	DB           *mongo.Database
	AuditService audit.Service
}

func NewGroupDAO(db *mongo.Database, auditService audit.Service) *GroupDAO {
	return &GroupDAO{DB: db, AuditService: auditService}
}

func (dao *GroupDAO) collection() *mongo.Collection {
	return dao.DB.Collection(mongo_schema.CollectionGroups)
}

func (dao *GroupDAO) CreateGroup(ctx context.Context, group model.Group) (*model.Group, error) {
	start := time.Now()
	logger.Info("Creating new group",
		zap.String("name", group.Name),
		zap.String("parent", group.Parent))

	common := model.NewRecordCommonFields()
	group.ID, group.CreatedAt = common.ID, common.CreatedAt
	if group.UserIDs == nil {
		group.UserIDs = []string{}
	}
	if group.RoleIDs == nil {
		group.RoleIDs = []string{}
	}

	if _, err := dao.collection().InsertOne(ctx, group); err != nil {
		logger.Error("Failed to create group",
			zap.Error(err),
			zap.String("name", group.Name),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Group created successfully",
		zap.String("groupID", group.ID),
		zap.Duration("duration", time.Since(start)))

	actorID, _ := engine.UserIDFromContext(ctx)
	if err := dao.AuditService.RecordAction(ctx, actorID, audit.ActionCreateGroup, bson.M{
		mongo_schema.FieldID:      group.ID,
		mongo_schema.FieldName:    group.Name,
		mongo_schema.FieldParent:  group.Parent,
		mongo_schema.FieldUserIDs: group.UserIDs,
		mongo_schema.FieldRoleIDs: group.RoleIDs,
	}); err != nil {
		logger.Error("Failed to record action history", zap.Error(err))
	}

	return &group, nil
}

func (dao *GroupDAO) GetGroup(ctx context.Context, groupID string) (*model.Group, error) {
	var group model.Group
	err := dao.collection().FindOne(ctx, bson.D{{Key: mongo_schema.FieldID, Value: groupID}}).Decode(&group)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, echo_errors.ErrGroupNotFound
		}
		logger.Error("Failed to get group", zap.Error(err), zap.String("groupID", groupID))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	return &group, nil
}

// exists reports whether any group matches filter.
func (dao *GroupDAO) exists(ctx context.Context, filter bson.D) (bool, error) {
	n, err := dao.collection().CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	return n > 0, nil
}

// IsParentOfGroup reports whether userID created groupID.
func (dao *GroupDAO) IsParentOfGroup(ctx context.Context, userID, groupID string) (bool, error) {
	return dao.exists(ctx, bson.D{
		{Key: mongo_schema.FieldID, Value: groupID},
		{Key: mongo_schema.FieldCreatedBy, Value: userID},
	})
}

// VerifyUserInGroup reports whether userID is a member of groupID.
func (dao *GroupDAO) VerifyUserInGroup(ctx context.Context, userID, groupID string) (bool, error) {
	return dao.exists(ctx, bson.D{
		{Key: mongo_schema.FieldID, Value: groupID},
		{Key: mongo_schema.FieldUserIDs, Value: userID},
	})
}

// ListAllGroups returns every group, oldest first, so parents come before their children.
func (dao *GroupDAO) ListAllGroups(ctx context.Context) ([]*model.Group, error) {
	cursor, err := dao.collection().Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: mongo_schema.FieldCreatedAt, Value: 1}}))
	if err != nil {
		logger.Error("Failed to list groups", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	defer cursor.Close(ctx)

	groups := make([]*model.Group, 0)
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	return groups, nil
}

// ListChildren returns the direct children of parentID. An empty parentID lists root groups.
func (dao *GroupDAO) ListChildren(ctx context.Context, parentID string) ([]*model.Group, error) {
	filter := bson.D{{Key: mongo_schema.FieldParent, Value: parentID}}
	if parentID == "" {
		filter = bson.D{{Key: mongo_schema.FieldParent, Value: bson.D{{Key: "$in", Value: bson.A{nil, ""}}}}}
	}

	cursor, err := dao.collection().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: mongo_schema.FieldCreatedAt, Value: -1}}))
	if err != nil {
		logger.Error("Failed to list child groups", zap.Error(err), zap.String("parentID", parentID))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	defer cursor.Close(ctx)

	groups := make([]*model.Group, 0)
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	return groups, nil
}
