package discussions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	errs "github.com/scamlens/api/pkg/errors"
)

func TestGetAndIncrementViews(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the post-increment document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key: "value",
			Value: bson.D{
				{Key: "_id", Value: id},
				{Key: "contractAddress", Value: "0xabc"},
				{Key: "title", Value: "Is this a honeypot?"},
				{Key: "views", Value: int64(8)},
			},
		}))

		repo := &Repository{collection: mt.Coll}
		d, err := repo.GetAndIncrementViews(context.Background(), id)
		require.NoError(mt, err)
		require.Equal(mt, id, d.ID)
		require.Equal(mt, int64(8), d.Views)

		// The bump must happen in the store, not read-modify-write.
		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		require.Equal(mt, "findAndModify", evt.CommandName)
		require.EqualValues(mt, 1, evt.Command.Lookup("update", "$inc", "views").AsInt64())
		require.True(mt, evt.Command.Lookup("new").Boolean())
	})

	mt.Run("missing discussion maps to not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		repo := &Repository{collection: mt.Coll}
		_, err := repo.GetAndIncrementViews(context.Background(), primitive.NewObjectID())
		require.ErrorIs(mt, err, errs.ErrNotFound)
	})
}
