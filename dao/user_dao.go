// dao/user_dao.go
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
	helper_util "github.com/dev-mohitbeniwal/backoffice/util/helper"
)

// SearchUsersLimit caps the picker search.
const SearchUsersLimit = 10

type UserDAO struct {
	DB           *mongo.Database
	AuditService audit.Service
}

func NewUserDAO(db *mongo.Database, auditService audit.Service) *UserDAO {
	return &UserDAO{DB: db, AuditService: auditService}
}

func (dao *UserDAO) collection() *mongo.Collection {
	return dao.DB.Collection(mongo_schema.CollectionUsers)
}

// publicProjection keeps credential material out of every read.
func publicProjection() bson.D {
	return bson.D{{Key: mongo_schema.FieldServices, Value: 0}}
}

// CreateUser stores a user whose password has already been hashed.
func (dao *UserDAO) CreateUser(ctx context.Context, user model.User) (string, error) {
	start := time.Now()
	logger.Info("Creating new user", zap.String("username", user.Username))

	if user.ID == "" {
		common := model.NewRecordCommonFields()
		user.ID, user.CreatedAt = common.ID, common.CreatedAt
	}
	if user.Cities == nil {
		user.Cities = []string{}
	}
	if user.Status == "" {
		user.Status = model.UserStatusActive
	}

	_, err := dao.collection().InsertOne(ctx, user)
	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
			zap.Duration("duration", duration))
		if mongo.IsDuplicateKeyError(err) {
			return "", echo_errors.ErrUserConflict
		}
		return "", fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}

	logger.Info("User created successfully",
		zap.String("userID", user.ID),
		zap.Duration("duration", duration))

	actorID, _ := engine.UserIDFromContext(ctx)
	if err := dao.AuditService.RecordAction(ctx, actorID, audit.ActionCreateUser, bson.M{
		mongo_schema.FieldID:       user.ID,
		mongo_schema.FieldUsername: user.Username,
	}); err != nil {
		logger.Error("Failed to record action history", zap.Error(err))
	}

	return user.ID, nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	err := dao.collection().FindOne(ctx,
		bson.D{{Key: mongo_schema.FieldID, Value: userID}},
		options.FindOne().SetProjection(publicProjection()),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, echo_errors.ErrUserNotFound
		}
		logger.Error("Failed to get user", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	return &user, nil
}

// GetUserByUsername returns the full document, credentials included, for sign-in.
func (dao *UserDAO) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := dao.collection().FindOne(ctx, bson.D{{Key: mongo_schema.FieldUsername, Value: username}}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, echo_errors.ErrUserNotFound
		}
		logger.Error("Failed to get user by username", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	return &user, nil
}

func (dao *UserDAO) GetUserProfile(ctx context.Context, userID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := dao.collection().FindOne(ctx,
		bson.D{{Key: mongo_schema.FieldID, Value: userID}},
		options.FindOne().SetProjection(bson.D{
			{Key: mongo_schema.FieldUsername, Value: 1},
			{Key: mongo_schema.FieldEmail, Value: 1},
			{Key: mongo_schema.FieldCities, Value: 1},
			{Key: mongo_schema.FieldLanguage, Value: 1},
		}),
	).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, echo_errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	return &profile, nil
}

// ListUsers returns one page of users, newest first.
func (dao *UserDAO) ListUsers(ctx context.Context, opts model.UserListOptions) ([]*model.User, error) {
	start := time.Now()

	findOpts := options.Find().
		SetSort(bson.D{{Key: mongo_schema.FieldCreatedAt, Value: -1}}).
		SetProjection(publicProjection()).
		SetSkip(opts.Skip).
		SetLimit(opts.Limit)

	cursor, err := dao.collection().Find(ctx, helper_util.SearchFilter(mongo_schema.FieldUsername, opts.SearchText), findOpts)
	if err != nil {
		logger.Error("Failed to list users",
			zap.Error(err),
			zap.String("searchText", opts.SearchText),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	defer cursor.Close(ctx)

	users := make([]*model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}

	logger.Debug("Users listed", zap.Int("count", len(users)), zap.Duration("duration", time.Since(start)))
	return users, nil
}

func (dao *UserDAO) CountUsers(ctx context.Context, searchText string) (int64, error) {
	total, err := dao.collection().CountDocuments(ctx, helper_util.SearchFilter(mongo_schema.FieldUsername, searchText))
	if err != nil {
		logger.Error("Failed to count users", zap.Error(err), zap.String("searchText", searchText))
		return 0, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	return total, nil
}

// SearchUsers backs the member picker: id and username only.
func (dao *UserDAO) SearchUsers(ctx context.Context, searchText string) ([]*model.UserOption, error) {
	findOpts := options.Find().
		SetSort(bson.D{{Key: mongo_schema.FieldUsername, Value: 1}}).
		SetProjection(bson.D{{Key: mongo_schema.FieldUsername, Value: 1}}).
		SetLimit(SearchUsersLimit)

	cursor, err := dao.collection().Find(ctx, helper_util.SearchFilter(mongo_schema.FieldUsername, searchText), findOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	defer cursor.Close(ctx)

	users := make([]*model.UserOption, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	return users, nil
}
