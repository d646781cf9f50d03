package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
)

func stageKeys(p mongo.Pipeline) []string {
	keys := make([]string, 0, len(p))
	for _, stage := range p {
		keys = append(keys, stage[0].Key)
	}
	return keys
}

func TestListPipeline(t *testing.T) {
	t.Run("with search text", func(t *testing.T) {
		pipeline := ListPipeline(ActionHistoryQuery{SearchText: "john", Skip: 20, Limit: 10})

		assert.Equal(t, []string{"$lookup", "$unwind", "$match", "$sort", "$skip", "$limit", "$project"}, stageKeys(pipeline))

		unwind := pipeline[1][0].Value.(bson.D)
		assert.Contains(t, unwind, bson.E{Key: "preserveNullAndEmptyArrays", Value: true})

		match := pipeline[2][0].Value.(bson.D)
		assert.Equal(t, "user.username", match[0].Key)
		assert.Equal(t, primitive.Regex{Pattern: "john", Options: "i"}, match[0].Value)

		assert.Equal(t, int64(20), pipeline[4][0].Value)
		assert.Equal(t, int64(10), pipeline[5][0].Value)
	})

	t.Run("blank search text has no match stage", func(t *testing.T) {
		pipeline := ListPipeline(ActionHistoryQuery{SearchText: "  ", Limit: 10})

		assert.Equal(t, []string{"$lookup", "$unwind", "$sort", "$skip", "$limit", "$project"}, stageKeys(pipeline))
	})

	t.Run("sorts newest first", func(t *testing.T) {
		pipeline := ListPipeline(ActionHistoryQuery{Limit: 10})

		assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, pipeline[2][0].Value)
	})
}

func TestCountPipeline(t *testing.T) {
	assert.Equal(t, []string{"$lookup", "$unwind", "$match", "$count"}, stageKeys(CountPipeline("Jo")))
	assert.Equal(t, []string{"$lookup", "$unwind", "$count"}, stageKeys(CountPipeline("")))
}

func TestMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list decodes joined username", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".actionsHistory", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "h1"},
				{Key: "userId", Value: "u1"},
				{Key: "username", Value: "john"},
				{Key: "action", Value: ActionCreateUser},
				{Key: "createdAt", Value: created},
			},
			bson.D{
				{Key: "_id", Value: "h2"},
				{Key: "userId", Value: "gone"},
				{Key: "action", Value: ActionSignIn},
				{Key: "createdAt", Value: created},
			},
		))

		records, err := repo.ListActionsHistory(context.Background(), ActionHistoryQuery{Limit: 10})

		require.NoError(mt, err)
		require.Len(mt, records, 2)
		assert.Equal(mt, "john", records[0].Username)
		assert.Equal(mt, "", records[1].Username)
		assert.True(mt, created.Equal(records[0].CreatedAt))
	})

	mt.Run("count reads total", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".actionsHistory", mtest.FirstBatch,
			bson.D{{Key: "total", Value: int32(25)}}))

		total, err := repo.CountActionsHistory(context.Background(), "john")

		require.NoError(mt, err)
		assert.Equal(mt, int64(25), total)
	})

	mt.Run("count of no matches is zero", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".actionsHistory", mtest.FirstBatch))

		total, err := repo.CountActionsHistory(context.Background(), "nobody")

		require.NoError(mt, err)
		assert.Equal(mt, int64(0), total)
	})

	mt.Run("record inserts", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.RecordAction(context.Background(), ActionHistory{ID: "h1", UserID: "u1", Action: ActionSignIn, CreatedAt: time.Now()})

		assert.NoError(mt, err)
	})

	mt.Run("errors are wrapped", func(mt *mtest.T) {
		repo := NewMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad", Name: "BadValue"}))

		_, err := repo.ListActionsHistory(context.Background(), ActionHistoryQuery{Limit: 10})

		assert.ErrorIs(mt, err, echo_errors.ErrDatabaseOperation)
	})
}
