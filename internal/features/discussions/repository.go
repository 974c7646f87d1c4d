package discussions

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

// Repository handles database interactions for discussions
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates the repository and ensures indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("discussions")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			// List discussions for a contract, newest first
			Keys: bson.D{
				{Key: "contractAddress", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	})

	return &Repository{collection: collection}
}

// Create inserts a new discussion with empty replies and vote sets.
func (r *Repository) Create(ctx context.Context, d *Discussion) error {
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	d.Views = 0
	if d.Tags == nil {
		d.Tags = []string{}
	}
	d.Replies = []Reply{}
	d.Votes = VoteSets{Upvotes: []string{}, Downvotes: []string{}}

	result, err := r.collection.InsertOne(ctx, d)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		d.ID = oid
	}
	return nil
}

// GetByID fetches a discussion without touching the view counter.
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*Discussion, error) {
	var d Discussion
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// GetAndIncrementViews atomically bumps the view counter and returns the
// updated document. Concurrent reads each land their own increment.
func (r *Repository) GetAndIncrementViews(ctx context.Context, id primitive.ObjectID) (*Discussion, error) {
	update := bson.M{
		"$inc": bson.M{"views": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d Discussion
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// List returns discussions sorted by creation date descending, optionally
// filtered by contract address.
func (r *Repository) List(ctx context.Context, contractAddress string, p pagination.Params) ([]Discussion, int64, error) {
	filter := bson.M{}
	if contractAddress != "" {
		filter["contractAddress"] = contractAddress
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []Discussion
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// AddReply appends the reply and returns the updated discussion.
func (r *Repository) AddReply(ctx context.Context, id primitive.ObjectID, reply Reply) (*Discussion, error) {
	update := bson.M{
		"$push": bson.M{"replies": reply},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d Discussion
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// SaveVotes persists the discussion-level vote sets.
func (r *Repository) SaveVotes(ctx context.Context, id primitive.ObjectID, votes VoteSets) (*Discussion, error) {
	update := bson.M{
		"$set": bson.M{
			"votes":     votes,
			"updatedAt": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d Discussion
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// SaveReplyVotes persists the vote sets of one embedded reply.
func (r *Repository) SaveReplyVotes(ctx context.Context, id primitive.ObjectID, replyID string, votes VoteSets) (*Discussion, error) {
	update := bson.M{
		"$set": bson.M{
			"replies.$[r].votes": votes,
			"updatedAt":          time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"r.id": replyID}},
		})

	var d Discussion
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}
