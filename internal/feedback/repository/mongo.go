package repository

import (
	"context"
	"time"

	"github.com/loofsan/SF-Hacks2025/internal/feedback"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores events in the feedbacks collection. resource_id may be
// an ObjectID on documents written by earlier deployments.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Create(ctx context.Context, f *feedback.Feedback) (string, error) {
	if f.ID == "" {
		f.ID = primitive.NewObjectID().Hex()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	if _, err := m.col.InsertOne(ctx, f); err != nil {
		return "", err
	}
	return f.ID, nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*feedback.Feedback, error) {
	return m.find(ctx, bson.M{})
}

func (m *MongoRepo) ByResource(ctx context.Context, resourceID string) ([]*feedback.Feedback, error) {
	return m.find(ctx, resourceFilter(resourceID))
}

func (m *MongoRepo) find(ctx context.Context, filter bson.M) ([]*feedback.Feedback, error) {
	cur, err := m.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := []*feedback.Feedback{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type statsRow struct {
	TotalFeedback int `bson:"totalFeedback"`
	RatingCount   int `bson:"ratingCount"`
	RatingSum     int `bson:"ratingSum"`
	HelpfulCount  int `bson:"helpfulCount"`
}

func (m *MongoRepo) Stats(ctx context.Context, resourceID string) (feedback.Stats, error) {
	cur, err := m.col.Aggregate(ctx, statsPipeline(resourceID))
	if err != nil {
		return feedback.Stats{}, err
	}
	var rows []statsRow
	if err := cur.All(ctx, &rows); err != nil {
		return feedback.Stats{}, err
	}
	if len(rows) == 0 {
		return feedback.Stats{}, nil
	}
	r := rows[0]
	s := feedback.Stats{
		TotalFeedback: r.TotalFeedback,
		RatingCount:   r.RatingCount,
		ViewCount:     r.TotalFeedback - r.RatingCount,
		HelpfulCount:  r.HelpfulCount,
	}
	if r.RatingCount > 0 {
		s.AverageRating = float64(r.RatingSum) / float64(r.RatingCount)
	}
	return s, nil
}

func resourceFilter(resourceID string) bson.M {
	ids := bson.A{resourceID}
	if oid, err := primitive.ObjectIDFromHex(resourceID); err == nil {
		ids = append(ids, oid)
	}
	return bson.M{"resource_id": bson.M{"$in": ids}}
}

func statsPipeline(resourceID string) mongo.Pipeline {
	rated := bson.M{"$gte": bson.A{"$rating", 1}}
	return mongo.Pipeline{
		{{Key: "$match", Value: resourceFilter(resourceID)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalFeedback", Value: bson.M{"$sum": 1}},
			{Key: "ratingCount", Value: bson.M{"$sum": bson.M{"$cond": bson.A{rated, 1, 0}}}},
			{Key: "ratingSum", Value: bson.M{"$sum": bson.M{"$cond": bson.A{rated, "$rating", 0}}}},
			{Key: "helpfulCount", Value: bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$and": bson.A{rated, "$helpful"}}, 1, 0,
			}}}},
		}}},
	}
}
