// db/mongo.go
package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/backoffice/config"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	mongo_schema "github.com/dev-mohitbeniwal/backoffice/model/mongo"
)

var (
	MongoClient *mongo.Client
	MongoDB     *mongo.Database
)

func InitMongo() error {
	uri := config.GetString("mongo.uri")
	timeout := config.GetDuration("mongo.timeout")
	logger.Info("Connecting to MongoDB", zap.String("database", config.GetString("mongo.database")))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if timeout > 0 {
		opts.SetTimeout(timeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	MongoClient = client
	MongoDB = client.Database(config.GetString("mongo.database"))

	if err := EnsureIndexes(ctx, MongoDB); err != nil {
		return fmt.Errorf("failed to ensure MongoDB indexes: %w", err)
	}

	logger.Info("Successfully connected to MongoDB")
	return nil
}

func CloseMongo() {
	if MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := MongoClient.Disconnect(ctx); err != nil {
			logger.Error("Error closing MongoDB connection", zap.Error(err))
		} else {
			logger.Info("MongoDB connection closed successfully")
		}
	}
}

// EnsureIndexes creates the indexes the list and membership queries rely on.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		mongo_schema.CollectionUsers: {
			{Keys: bson.D{{Key: mongo_schema.FieldUsername, Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: mongo_schema.FieldCreatedAt, Value: -1}}},
		},
		mongo_schema.CollectionGroups: {
			{Keys: bson.D{{Key: mongo_schema.FieldUserIDs, Value: 1}}},
			{Keys: bson.D{{Key: mongo_schema.FieldParent, Value: 1}}},
			{Keys: bson.D{{Key: mongo_schema.FieldCreatedBy, Value: 1}}},
		},
		mongo_schema.CollectionActionsHistory: {
			{Keys: bson.D{{Key: mongo_schema.FieldCreatedAt, Value: -1}}},
			{Keys: bson.D{{Key: mongo_schema.FieldUserID, Value: 1}}},
		},
	}

	for collection, models := range indexes {
		names, err := database.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			logger.Error("Failed to create indexes", zap.Error(err), zap.String("collection", collection))
			return err
		}
		logger.Debug("Indexes ensured", zap.String("collection", collection), zap.Strings("indexes", names))
	}
	return nil
}
