// dao/role_dao.go
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

type RoleDAO struct {
	DB           *mongo.Database
	AuditService audit.Service
}

func NewRoleDAO(db *mongo.Database, auditService audit.Service) *RoleDAO {
	return &RoleDAO{DB: db, AuditService: auditService}
}

func (dao *RoleDAO) collection() *mongo.Collection {
	return dao.DB.Collection(mongo_schema.CollectionRoles)
}

func (dao *RoleDAO) CreateRole(ctx context.Context, role model.Role) (*model.Role, error) {
	start := time.Now()
	logger.Info("Creating new role", zap.String("name", role.Name))

	common := model.NewRecordCommonFields()
	role.ID, role.CreatedAt = common.ID, common.CreatedAt
	if role.Permissions == nil {
		role.Permissions = []string{}
	}

	if _, err := dao.collection().InsertOne(ctx, role); err != nil {
		logger.Error("Failed to create role",
			zap.Error(err),
			zap.String("name", role.Name),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Role created successfully",
		zap.String("roleID", role.ID),
		zap.Duration("duration", time.Since(start)))

	actorID, _ := engine.UserIDFromContext(ctx)
	if err := dao.AuditService.RecordAction(ctx, actorID, audit.ActionCreateRole, bson.M{
		mongo_schema.FieldID:          role.ID,
		mongo_schema.FieldName:        role.Name,
		mongo_schema.FieldPermissions: role.Permissions,
	}); err != nil {
		logger.Error("Failed to record action history", zap.Error(err))
	}

	return &role, nil
}

// UpdateRolePermissions replaces the permission list and returns the updated role.
func (dao *RoleDAO) UpdateRolePermissions(ctx context.Context, roleID string, permissions []string) (*model.Role, error) {
	start := time.Now()
	if permissions == nil {
		permissions = []string{}
	}
	now := time.Now().UTC()

	var updated model.Role
	err := dao.collection().FindOneAndUpdate(ctx,
		bson.D{{Key: mongo_schema.FieldID, Value: roleID}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: mongo_schema.FieldPermissions, Value: permissions},
			{Key: mongo_schema.FieldUpdatedAt, Value: now},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, echo_errors.ErrRoleNotFound
		}
		logger.Error("Failed to update role permissions",
			zap.Error(err),
			zap.String("roleID", roleID),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}

	actorID, _ := engine.UserIDFromContext(ctx)
	if err := dao.AuditService.RecordAction(ctx, actorID, audit.ActionUpdateRolePermissions, bson.M{
		mongo_schema.FieldID:          roleID,
		mongo_schema.FieldPermissions: permissions,
	}); err != nil {
		logger.Error("Failed to record action history", zap.Error(err))
	}

	return &updated, nil
}

func (dao *RoleDAO) GetRole(ctx context.Context, roleID string) (*model.Role, error) {
	var role model.Role
	err := dao.collection().FindOne(ctx, bson.D{{Key: mongo_schema.FieldID, Value: roleID}}).Decode(&role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, echo_errors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	return &role, nil
}

func (dao *RoleDAO) ListRoles(ctx context.Context) ([]*model.Role, error) {
	return dao.findRoles(ctx, bson.D{})
}

// GetRolesByIDs returns the roles among roleIDs that still exist.
func (dao *RoleDAO) GetRolesByIDs(ctx context.Context, roleIDs []string) ([]*model.Role, error) {
	if len(roleIDs) == 0 {
		return []*model.Role{}, nil
	}
	return dao.findRoles(ctx, bson.D{{Key: mongo_schema.FieldID, Value: bson.D{{Key: "$in", Value: roleIDs}}}})
}

// GetRolesOfGroups returns the distinct roles attached to any of groupIDs.
func (dao *RoleDAO) GetRolesOfGroups(ctx context.Context, groupIDs []string) ([]*model.Role, error) {
	if len(groupIDs) == 0 {
		return []*model.Role{}, nil
	}

	raw, err := dao.DB.Collection(mongo_schema.CollectionGroups).Distinct(ctx, mongo_schema.FieldRoleIDs,
		bson.D{{Key: mongo_schema.FieldID, Value: bson.D{{Key: "$in", Value: groupIDs}}}})
	if err != nil {
		logger.Error("Failed to collect role ids of groups", zap.Error(err), zap.Strings("groupIDs", groupIDs))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}

	roleIDs := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			roleIDs = append(roleIDs, id)
		}
	}
	return dao.GetRolesByIDs(ctx, roleIDs)
}

func (dao *RoleDAO) findRoles(ctx context.Context, filter bson.D) ([]*model.Role, error) {
	start := time.Now()
	cursor, err := dao.collection().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: mongo_schema.FieldName, Value: 1}}))
	if err != nil {
		logger.Error("Failed to list roles", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	defer cursor.Close(ctx)

	roles := make([]*model.Role, 0)
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	return roles, nil
}
