package scans

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	errs "github.com/scamlens/api/pkg/errors"
)

func TestLatest(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("queries newest first with insertion order as tie break", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		ns := fmt.Sprintf("%s.%s", mt.Coll.Database().Name(), mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "contractAddress", Value: "0xabc"},
			{Key: "isContract", Value: true},
			{Key: "isScam", Value: true},
			{Key: "scannedBy", Value: "0xfeed"},
		}))

		repo := &Repository{collection: mt.Coll}
		scan, err := repo.Latest(context.Background(), "0xabc")
		require.NoError(mt, err)
		require.Equal(mt, id, scan.ID)
		require.True(mt, scan.IsScam)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		require.Equal(mt, "find", evt.CommandName)

		// Two scans with the same scanDate must resolve the same way on
		// every call, so the sort falls back to _id descending.
		sort, err := evt.Command.Lookup("sort").Document().Elements()
		require.NoError(mt, err)
		require.Len(mt, sort, 2)
		require.Equal(mt, "scanDate", sort[0].Key())
		require.EqualValues(mt, -1, sort[0].Value().AsInt64())
		require.Equal(mt, "_id", sort[1].Key())
		require.EqualValues(mt, -1, sort[1].Value().AsInt64())
	})

	mt.Run("unscanned contract maps to not found", func(mt *mtest.T) {
		ns := fmt.Sprintf("%s.%s", mt.Coll.Database().Name(), mt.Coll.Name())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		repo := &Repository{collection: mt.Coll}
		_, err := repo.Latest(context.Background(), "0xdead")
		require.ErrorIs(mt, err, errs.ErrNotFound)
	})
}
