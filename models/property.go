package models

// Property statuses mirror what the storefront sends; they are stored as
// plain strings so existing documents never fail to decode.
const (
	PropertyStatusAvailable = "available"
	PropertyStatusSold      = "sold"
	PropertyStatusRented    = "rented"
	PropertyStatusPending   = "pending"
)

// Property is the primary searchable entity. Titles and descriptions are
// bilingual (English/Arabic). The store assigns the _id at insert time; it is
// never part of the request payload.
type Property struct {
	TitleEN       string             `json:"title_en" bson:"title_en" validate:"required"`
	TitleAR       string             `json:"title_ar" bson:"title_ar" validate:"required"`
	DescriptionEN string             `json:"description_en,omitempty" bson:"description_en,omitempty"`
	DescriptionAR string             `json:"description_ar,omitempty" bson:"description_ar,omitempty"`
	Price         float64            `json:"price" bson:"price" validate:"gte=0"`
	Currency      string             `json:"currency" bson:"currency"`
	Location      string             `json:"location" bson:"location" validate:"required"`
	City          string             `json:"city,omitempty" bson:"city,omitempty"`
	Country       string             `json:"country,omitempty" bson:"country,omitempty"`
	PropertyType  string             `json:"property_type" bson:"property_type" validate:"required"`
	Bedrooms      *int               `json:"bedrooms,omitempty" bson:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms     *int               `json:"bathrooms,omitempty" bson:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	AreaSqft      *float64           `json:"area_sqft,omitempty" bson:"area_sqft,omitempty" validate:"omitempty,gte=0"`
	Amenities     []string           `json:"amenities" bson:"amenities"`
	Images        []string           `json:"images" bson:"images"`
	FloorPlans    []string           `json:"floor_plans" bson:"floor_plans"`
	Coordinates   map[string]float64 `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	Featured      bool               `json:"featured" bson:"featured"`
	Status        string             `json:"status" bson:"status"`
	ListedBy      string             `json:"listed_by,omitempty" bson:"listed_by,omitempty"`
}

// SetDefaults fills the fields the client may omit. Called after bind,
// before validation.
func (p *Property) SetDefaults() {
	if p.Currency == "" {
		p.Currency = "AED"
	}
	if p.Status == "" {
		p.Status = PropertyStatusAvailable
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.FloorPlans == nil {
		p.FloorPlans = []string{}
	}
}
