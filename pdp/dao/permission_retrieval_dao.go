package dao

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/model"
	mongo_schema "github.com/dev-mohitbeniwal/backoffice/model/mongo"
)

// PermissionRetrievalDAO loads the roles reachable from a user's group memberships.
type PermissionRetrievalDAO struct {
	DB *mongo.Database
}

func NewPermissionRetrievalDAO(db *mongo.Database) *PermissionRetrievalDAO {
	return &PermissionRetrievalDAO{DB: db}
}

// UserRolesPipeline joins every group containing userID with its roles and emits the roles.
func UserRolesPipeline(userID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: mongo_schema.FieldUserIDs, Value: userID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: mongo_schema.CollectionRoles},
			{Key: "localField", Value: mongo_schema.FieldRoleIDs},
			{Key: "foreignField", Value: mongo_schema.FieldID},
			{Key: "as", Value: "roles"},
		}}},
		{{Key: "$unwind", Value: "$roles"}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$roles"}}}},
	}
}

func (dao *PermissionRetrievalDAO) RetrieveUserRoles(ctx context.Context, userID string) ([]*model.Role, error) {
	start := time.Now()
	logger.Debug("Retrieving roles for user", zap.String("userID", userID))

	cursor, err := dao.DB.Collection(mongo_schema.CollectionGroups).Aggregate(ctx, UserRolesPipeline(userID))
	if err != nil {
		logger.Error("Failed to execute user roles pipeline",
			zap.Error(err),
			zap.String("userID", userID),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	defer cursor.Close(ctx)

	var roles []*model.Role
	if err := cursor.All(ctx, &roles); err != nil {
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}

	logger.Debug("Roles retrieved for user",
		zap.String("userID", userID),
		zap.Int("count", len(roles)),
		zap.Duration("duration", time.Since(start)))
	return roles, nil
}
