package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestBuildQueryEmptyFilterMatchesEverything(t *testing.T) {
	assert.Equal(t, bson.M{}, SearchFilters{}.BuildQuery())
}

func TestBuildQueryFreeText(t *testing.T) {
	query := SearchFilters{Query: "villa"}.BuildQuery()

	or, ok := query["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"title_en": bson.M{"$regex": "villa", "$options": "i"}}, or[0])
	assert.Equal(t, bson.M{"description_en": bson.M{"$regex": "villa", "$options": "i"}}, or[1])
	assert.Len(t, query, 1)
}

func TestBuildQueryPerField(t *testing.T) {
	tests := []struct {
		name    string
		filters SearchFilters
		want    bson.M
	}{
		{
			name:    "location substring",
			filters: SearchFilters{Location: "Marina"},
			want:    bson.M{"location": bson.M{"$regex": "Marina", "$options": "i"}},
		},
		{
			name:    "city substring",
			filters: SearchFilters{City: "Dubai"},
			want:    bson.M{"city": bson.M{"$regex": "Dubai", "$options": "i"}},
		},
		{
			name:    "property type exact",
			filters: SearchFilters{PropertyType: "villa"},
			want:    bson.M{"property_type": "villa"},
		},
		{
			name:    "bedrooms at least",
			filters: SearchFilters{Bedrooms: intPtr(3)},
			want:    bson.M{"bedrooms": bson.M{"$gte": 3}},
		},
		{
			name:    "zero bedrooms is a real condition",
			filters: SearchFilters{Bedrooms: intPtr(0)},
			want:    bson.M{"bedrooms": bson.M{"$gte": 0}},
		},
		{
			name:    "bathrooms at least",
			filters: SearchFilters{Bathrooms: intPtr(2)},
			want:    bson.M{"bathrooms": bson.M{"$gte": 2}},
		},
		{
			name:    "min price only",
			filters: SearchFilters{MinPrice: floatPtr(100)},
			want:    bson.M{"price": bson.M{"$gte": 100.0}},
		},
		{
			name:    "max price only",
			filters: SearchFilters{MaxPrice: floatPtr(500)},
			want:    bson.M{"price": bson.M{"$lte": 500.0}},
		},
		{
			name:    "both bounds share one price condition",
			filters: SearchFilters{MinPrice: floatPtr(100), MaxPrice: floatPtr(500)},
			want:    bson.M{"price": bson.M{"$gte": 100.0, "$lte": 500.0}},
		},
		{
			name:    "featured true",
			filters: SearchFilters{Featured: boolPtr(true)},
			want:    bson.M{"featured": true},
		},
		{
			name:    "featured false is still a condition",
			filters: SearchFilters{Featured: boolPtr(false)},
			want:    bson.M{"featured": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filters.BuildQuery())
		})
	}
}

func TestBuildQueryCombinesWithAnd(t *testing.T) {
	filters := SearchFilters{
		Query:        "palm",
		City:         "Dubai",
		PropertyType: "villa",
		MinPrice:     floatPtr(1000),
		Featured:     boolPtr(true),
	}
	query := filters.BuildQuery()

	assert.Len(t, query, 5, "each present field contributes exactly one top-level condition")
	assert.Contains(t, query, "$or")
	assert.Contains(t, query, "city")
	assert.Contains(t, query, "property_type")
	assert.Contains(t, query, "price")
	assert.Contains(t, query, "featured")
}
