package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIDFilterMatchesBothForms(t *testing.T) {
	hex := "65a1f0c2e4b0a1b2c3d4e5f6"
	oid, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)

	f := idFilter(hex)
	require.Equal(t, bson.M{"_id": bson.M{"$in": bson.A{hex, oid}}}, f)

	f = idFilter("not-hex")
	require.Equal(t, bson.M{"_id": bson.M{"$in": bson.A{"not-hex"}}}, f)
}

func TestBuildFilter(t *testing.T) {
	require.Equal(t, bson.M{}, buildFilter(Query{}))

	f := buildFilter(Query{
		AnyOf: []Condition{
			In(FieldCategory, "food", "housing"),
			Contains(FieldName, "a+b"),
			Equals(FieldType, "Shelter"),
		},
		ExcludeIDs: []string{"x"},
	})
	or, ok := f["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)
	require.Equal(t, bson.M{"category": bson.M{"$in": []string{"food", "housing"}}}, or[0])
	require.Equal(t, bson.M{"name": primitive.Regex{Pattern: `a\+b`, Options: "i"}}, or[1])
	require.Equal(t, bson.M{"type": "Shelter"}, or[2])
	require.Equal(t, bson.M{"$nin": bson.A{"x"}}, f["_id"])
}

func TestAddressConditionCoversLegacyField(t *testing.T) {
	f := conditionFilter(Contains(FieldAddress, "Mission"))
	re := primitive.Regex{Pattern: "Mission", Options: "i"}
	require.Equal(t, bson.M{"$or": bson.A{bson.M{"address": re}, bson.M{"location.address": re}}}, f)
}

func TestNearFilter(t *testing.T) {
	f := nearFilter(-122.4, 37.7, 5000)
	near := f["location"].(bson.M)["$near"].(bson.M)
	require.Equal(t, 5000.0, near["$maxDistance"])
	require.Equal(t, bson.A{-122.4, 37.7}, near["$geometry"].(bson.M)["coordinates"])
}
