package models

// Favorite joins a user to a property. Both references are required but
// neither is validated against its collection.
type Favorite struct {
	UserID     string `json:"user_id" bson:"user_id" validate:"required"`
	PropertyID string `json:"property_id" bson:"property_id" validate:"required"`
}
