// audit/repository.go
package audit

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	mongo_schema "github.com/dev-mohitbeniwal/backoffice/model/mongo"
	helper_util "github.com/dev-mohitbeniwal/backoffice/util/helper"
)

type Repository interface {
	RecordAction(ctx context.Context, record ActionHistory) error
	ListActionsHistory(ctx context.Context, query ActionHistoryQuery) ([]*ActionHistory, error)
	CountActionsHistory(ctx context.Context, searchText string) (int64, error)
}

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(mongo_schema.CollectionActionsHistory)}
}

// joinUserStages left-joins the acting user; records whose user is gone are kept.
func joinUserStages(searchText string) mongo.Pipeline {
	stages := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: mongo_schema.CollectionUsers},
			{Key: "localField", Value: mongo_schema.FieldUserID},
			{Key: "foreignField", Value: mongo_schema.FieldID},
			{Key: "as", Value: mongo_schema.FieldJoinedUser},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + mongo_schema.FieldJoinedUser},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	if filter := helper_util.SearchFilter(mongo_schema.FieldJoinedUser+"."+mongo_schema.FieldUsername, searchText); len(filter) > 0 {
		stages = append(stages, bson.D{{Key: "$match", Value: filter}})
	}
	return stages
}

// ListPipeline joins, filters, sorts newest first, paginates, then projects.
func ListPipeline(query ActionHistoryQuery) mongo.Pipeline {
	pipeline := joinUserStages(query.SearchText)
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: mongo_schema.FieldCreatedAt, Value: -1}}}},
		bson.D{{Key: "$skip", Value: query.Skip}},
		bson.D{{Key: "$limit", Value: query.Limit}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: mongo_schema.FieldUserID, Value: 1},
			{Key: mongo_schema.FieldUsername, Value: "$" + mongo_schema.FieldJoinedUser + "." + mongo_schema.FieldUsername},
			{Key: mongo_schema.FieldAction, Value: 1},
			{Key: mongo_schema.FieldData, Value: 1},
			{Key: mongo_schema.FieldCreatedAt, Value: 1},
		}}},
	)
	return pipeline
}

func CountPipeline(searchText string) mongo.Pipeline {
	pipeline := joinUserStages(searchText)
	return append(pipeline, bson.D{{Key: "$count", Value: "total"}})
}

func (r *MongoRepository) RecordAction(ctx context.Context, record ActionHistory) error {
	doc := bson.D{
		{Key: mongo_schema.FieldID, Value: record.ID},
		{Key: mongo_schema.FieldUserID, Value: record.UserID},
		{Key: mongo_schema.FieldAction, Value: record.Action},
		{Key: mongo_schema.FieldData, Value: record.Data},
		{Key: mongo_schema.FieldCreatedAt, Value: record.CreatedAt},
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	return nil
}

func (r *MongoRepository) ListActionsHistory(ctx context.Context, query ActionHistoryQuery) ([]*ActionHistory, error) {
	start := time.Now()

	cursor, err := r.collection.Aggregate(ctx, ListPipeline(query))
	if err != nil {
		logger.Error("Failed to list actions history",
			zap.Error(err),
			zap.String("searchText", query.SearchText),
			zap.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	defer cursor.Close(ctx)

	records := make([]*ActionHistory, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}

	logger.Debug("Actions history listed",
		zap.Int("count", len(records)),
		zap.Duration("duration", time.Since(start)))
	return records, nil
}

func (r *MongoRepository) CountActionsHistory(ctx context.Context, searchText string) (int64, error) {
	cursor, err := r.collection.Aggregate(ctx, CountPipeline(searchText))
	if err != nil {
		logger.Error("Failed to count actions history", zap.Error(err), zap.String("searchText", searchText))
		return 0, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("%w: %w", echo_errors.ErrDatabaseOperation, err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}
