package reports

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scamlens/api/internal/pkg/pagination"
	errs "github.com/scamlens/api/pkg/errors"
)

// Repository handles database interactions for reports
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates the repository and ensures indexes. The unique
// compound index is what enforces one report per (contract, reporter);
// there is deliberately no check-then-insert in Create.
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("reports")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "contractAddress", Value: 1},
				{Key: "reporter", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "contractAddress", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "reporter", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "reportDate", Value: -1}},
		},
	})

	return &Repository{collection: collection}
}

// Create inserts a report, mapping the unique-index violation to
// ErrDuplicateReport. The existing report is left untouched.
func (r *Repository) Create(ctx context.Context, report *Report) error {
	report.ReportDate = time.Now()

	result, err := r.collection.InsertOne(ctx, report)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrDuplicateReport
		}
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid
	}
	return nil
}

// ListByContract returns a contract's reports, newest first.
func (r *Repository) ListByContract(ctx context.Context, contractAddress string, p pagination.Params) ([]Report, int64, error) {
	return r.list(ctx, bson.M{"contractAddress": contractAddress}, p)
}

// ListByReporter returns a reporter's reports, newest first.
func (r *Repository) ListByReporter(ctx context.Context, reporter string, p pagination.Params) ([]Report, int64, error) {
	return r.list(ctx, bson.M{"reporter": reporter}, p)
}

func (r *Repository) list(ctx context.Context, filter bson.M, p pagination.Params) ([]Report, int64, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "reportDate", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []Report
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ThreatStats counts threat occurrences across one contract's reports.
func (r *Repository) ThreatStats(ctx context.Context, contractAddress string) ([]ThreatStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"contractAddress": contractAddress}}},
		{{Key: "$unwind", Value: "$threats"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$threats",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"threat": "$_id",
			"count":  1,
			"_id":    0,
		}}},
	}
	return r.aggregateThreatStats(ctx, pipeline)
}

// PopularThreats ranks threat types across all reports, most common first.
func (r *Repository) PopularThreats(ctx context.Context) ([]ThreatStat, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$threats"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$threats",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"threat": "$_id",
			"count":  1,
			"_id":    0,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
	return r.aggregateThreatStats(ctx, pipeline)
}

func (r *Repository) aggregateThreatStats(ctx context.Context, pipeline mongo.Pipeline) ([]ThreatStat, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats := []ThreatStat{}
	if err = cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// MostReported ranks contracts by report count, carrying the distinct
// threat types seen for each.
func (r *Repository) MostReported(ctx context.Context, limit int) ([]ReportedContract, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$threats"}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$contractAddress",
			"uniqueThreats": bson.M{"$addToSet": "$threats"},
			"reportIds":     bson.M{"$addToSet": "$_id"},
		}}},
		{{Key: "$project", Value: bson.M{
			"contractAddress": "$_id",
			"uniqueThreats":   1,
			"reportCount":     bson.M{"$size": "$reportIds"},
			"_id":             0,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "reportCount", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contracts := []ReportedContract{}
	if err = cursor.All(ctx, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}
