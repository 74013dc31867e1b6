package repository

import (
	"context"
	"errors"

	"github.com/loofsan/SF-Hacks2025/internal/category"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) List(ctx context.Context) ([]category.Category, error) {
	cur, err := m.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := []category.Category{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MongoRepo) Get(ctx context.Context, name string) (*category.Category, error) {
	var c category.Category
	if err := m.col.FindOne(ctx, bson.M{"name": name}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ReplaceAll clears the collection and inserts cats in order.
func (m *MongoRepo) ReplaceAll(ctx context.Context, cats []category.Category) error {
	if _, err := m.col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(cats) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(cats))
	for _, c := range cats {
		c.ID = ""
		docs = append(docs, c)
	}
	_, err := m.col.InsertMany(ctx, docs)
	return err
}

func (m *MongoRepo) Count(ctx context.Context) (int64, error) {
	return m.col.CountDocuments(ctx, bson.M{})
}
