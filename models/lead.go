package models

// Lead is an inbound inquiry, optionally tied to a property. property_id is
// not checked against the property collection.
type Lead struct {
	PropertyID string `json:"property_id,omitempty" bson:"property_id,omitempty"`
	Name       string `json:"name" bson:"name" validate:"required"`
	Email      string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty" bson:"phone,omitempty"`
	Message    string `json:"message,omitempty" bson:"message,omitempty"`
	Source     string `json:"source" bson:"source"`
}

func (l *Lead) SetDefaults() {
	if l.Source == "" {
		l.Source = "website"
	}
}
