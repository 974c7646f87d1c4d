package scans

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scamlens/api/internal/pkg/pagination"
	errs "github.com/scamlens/api/pkg/errors"
)

// Repository handles database interactions for scans
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates the repository and ensures indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("scans")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "contractAddress", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "scanDate", Value: -1}},
		},
	})

	return &Repository{collection: collection}
}

// Create appends a scan snapshot. No uniqueness applies; the same contract
// may be scanned many times by many scanners.
func (r *Repository) Create(ctx context.Context, scan *Scan) error {
	scan.ScanDate = time.Now()

	result, err := r.collection.InsertOne(ctx, scan)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		scan.ID = oid
	}
	return nil
}

// Latest returns the most recent scan for a contract. Ties on scanDate are
// broken by insertion order (_id desc) so the result is deterministic.
func (r *Repository) Latest(ctx context.Context, contractAddress string) (*Scan, error) {
	opts := options.FindOne().SetSort(bson.D{
		{Key: "scanDate", Value: -1},
		{Key: "_id", Value: -1},
	})

	var scan Scan
	err := r.collection.FindOne(ctx, bson.M{"contractAddress": contractAddress}, opts).Decode(&scan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &scan, nil
}

// History returns a contract's scans, newest first.
func (r *Repository) History(ctx context.Context, contractAddress string, p pagination.Params) ([]Scan, int64, error) {
	filter := bson.M{"contractAddress": contractAddress}

	opts := options.Find().
		SetSort(bson.D{
			{Key: "scanDate", Value: -1},
			{Key: "_id", Value: -1},
		}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []Scan
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
