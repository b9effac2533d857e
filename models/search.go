package models

import "go.mongodb.org/mongo-driver/bson"

// SearchLimit caps property search results; ListLimit caps the other listing
// endpoints (favorites, maintenance requests).
const (
	SearchLimit = 100
	ListLimit   = 200
)

// SearchFilters is the POST /properties/search payload. Every field is
// optional: empty strings and nil pointers contribute no condition. Pointers
// keep zero values meaningful — bedrooms=0, featured=false are real filters.
type SearchFilters struct {
	Query        string   `json:"q"`
	Location     string   `json:"location"`
	City         string   `json:"city"`
	MinPrice     *float64 `json:"min_price"`
	MaxPrice     *float64 `json:"max_price"`
	PropertyType string   `json:"property_type"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	Featured     *bool    `json:"featured"`
}

func ciSubstring(s string) bson.M {
	return bson.M{"$regex": s, "$options": "i"}
}

// BuildQuery maps the filter to a single Mongo query document. Conditions
// AND across fields; the free-text condition ORs title_en and description_en.
// An all-absent filter yields an empty document, which matches everything.
func (f SearchFilters) BuildQuery() bson.M {
	query := bson.M{}
	if f.Query != "" {
		query["$or"] = bson.A{
			bson.M{"title_en": ciSubstring(f.Query)},
			bson.M{"description_en": ciSubstring(f.Query)},
		}
	}
	if f.Location != "" {
		query["location"] = ciSubstring(f.Location)
	}
	if f.City != "" {
		query["city"] = ciSubstring(f.City)
	}
	if f.PropertyType != "" {
		query["property_type"] = f.PropertyType
	}
	if f.Bedrooms != nil {
		query["bedrooms"] = bson.M{"$gte": *f.Bedrooms}
	}
	if f.Bathrooms != nil {
		query["bathrooms"] = bson.M{"$gte": *f.Bathrooms}
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		query["price"] = price
	}
	if f.Featured != nil {
		query["featured"] = *f.Featured
	}
	return query
}
