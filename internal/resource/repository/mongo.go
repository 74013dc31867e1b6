package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/loofsan/SF-Hacks2025/internal/resource"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements the resource store on a MongoDB collection.
// New documents get a string _id holding an ObjectID hex; documents written
// by earlier deployments may still carry a real ObjectID, so id filters
// match both forms. Reads go through resource.Normalize.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

// legacyFields are removed whenever a document is rewritten in canonical form.
var legacyFields = []string{"contactPhone", "website", "documentation_required"}

func (m *MongoRepo) Create(ctx context.Context, r *resource.Resource) (string, error) {
	if r.ID == "" {
		r.ID = primitive.NewObjectID().Hex()
	}
	stampCreate(r, time.Now())
	if _, err := m.col.InsertOne(ctx, r); err != nil {
		return "", fmt.Errorf("insert resource: %w", err)
	}
	return r.ID, nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*resource.Resource, error) {
	var in resource.Incoming
	err := m.col.FindOne(ctx, idFilter(id)).Decode(&in)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return resource.Normalize(&in), nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*resource.Resource, error) {
	return m.Find(ctx, Query{})
}

func (m *MongoRepo) Find(ctx context.Context, q Query) ([]*resource.Resource, error) {
	opts := options.Find()
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	cur, err := m.col.Find(ctx, buildFilter(q), opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

func (m *MongoRepo) TextSearch(ctx context.Context, text string, excludeIDs []string, limit int) ([]*resource.Resource, error) {
	filter := bson.M{"$text": bson.M{"$search": text}}
	if len(excludeIDs) > 0 {
		filter["_id"] = bson.M{"$nin": idValues(excludeIDs)}
	}
	score := bson.M{"score": bson.M{"$meta": "textScore"}}
	opts := options.Find().SetProjection(score).SetSort(score)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

func (m *MongoRepo) Near(ctx context.Context, lon, lat, maxMeters float64) ([]*resource.Resource, error) {
	cur, err := m.col.Find(ctx, nearFilter(lon, lat, maxMeters))
	if err != nil {
		return nil, err
	}
	return decodeAll(ctx, cur)
}

// Replace rewrites every canonical field except _id, which is immutable and
// may be an ObjectID on older documents.
func (m *MongoRepo) Replace(ctx context.Context, r *resource.Resource) error {
	r.UpdatedAt = time.Now()
	raw, err := bson.Marshal(r)
	if err != nil {
		return err
	}
	set := bson.M{}
	if err := bson.Unmarshal(raw, &set); err != nil {
		return err
	}
	delete(set, "_id")

	unset := bson.M{}
	for _, f := range legacyFields {
		unset[f] = ""
	}
	if r.Location == nil {
		unset["location"] = ""
	}

	res, err := m.col.UpdateOne(ctx, idFilter(r.ID), bson.M{"$set": set, "$unset": unset})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Delete(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) Count(ctx context.Context) (int64, error) {
	return m.col.CountDocuments(ctx, bson.M{})
}

func (m *MongoRepo) DeleteAll(ctx context.Context) error {
	_, err := m.col.DeleteMany(ctx, bson.M{})
	return err
}

func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]*resource.Resource, error) {
	defer cur.Close(ctx)
	out := []*resource.Resource{}
	for cur.Next(ctx) {
		var in resource.Incoming
		if err := cur.Decode(&in); err != nil {
			return nil, err
		}
		out = append(out, resource.Normalize(&in))
	}
	return out, cur.Err()
}

// idValues expands ids into both their string and ObjectID forms.
func idValues(ids []string) bson.A {
	out := bson.A{}
	for _, id := range ids {
		out = append(out, id)
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}

func idFilter(id string) bson.M {
	return bson.M{"_id": bson.M{"$in": idValues([]string{id})}}
}

func buildFilter(q Query) bson.M {
	filter := bson.M{}
	if len(q.AnyOf) > 0 {
		or := bson.A{}
		for _, c := range q.AnyOf {
			or = append(or, conditionFilter(c))
		}
		filter["$or"] = or
	}
	if len(q.ExcludeIDs) > 0 {
		filter["_id"] = bson.M{"$nin": idValues(q.ExcludeIDs)}
	}
	return filter
}

func conditionFilter(c Condition) bson.M {
	field := string(c.Field)
	switch c.Op {
	case OpEquals:
		if len(c.Values) == 1 {
			return bson.M{field: c.Values[0]}
		}
		return bson.M{field: bson.M{"$in": c.Values}}
	case OpIn:
		return bson.M{field: bson.M{"$in": c.Values}}
	case OpContains:
		var match any
		if len(c.Values) == 1 {
			match = literalRegex(c.Values[0])
		} else {
			res := bson.A{}
			for _, v := range c.Values {
				res = append(res, literalRegex(v))
			}
			match = bson.M{"$in": res}
		}
		if c.Field == FieldAddress {
			return bson.M{"$or": bson.A{bson.M{field: match}, bson.M{"location.address": match}}}
		}
		return bson.M{field: match}
	}
	return bson.M{field: bson.M{"$in": c.Values}}
}

func literalRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func nearFilter(lon, lat, maxMeters float64) bson.M {
	return bson.M{"location": bson.M{"$near": bson.M{
		"$geometry":    bson.M{"type": "Point", "coordinates": bson.A{lon, lat}},
		"$maxDistance": maxMeters,
	}}}
}
