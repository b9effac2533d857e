package models

// Viewing is a scheduling request for a property visit. The preferred
// datetime is carried as an opaque string; no conflict checking happens.
type Viewing struct {
	PropertyID        string `json:"property_id" bson:"property_id" validate:"required"`
	UserID            string `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Name              string `json:"name,omitempty" bson:"name,omitempty"`
	Email             string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone             string `json:"phone,omitempty" bson:"phone,omitempty"`
	PreferredDatetime string `json:"preferred_datetime,omitempty" bson:"preferred_datetime,omitempty"`
	Notes             string `json:"notes,omitempty" bson:"notes,omitempty"`
}
