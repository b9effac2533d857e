package models

// Collection names follow the original deployment's convention: the entity
// type name, lowercased, with no plural.
const (
	CollectionProperty    = "property"
	CollectionLead        = "lead"
	CollectionViewing     = "viewing"
	CollectionFavorite    = "favorite"
	CollectionMaintenance = "maintenancerequest"
	CollectionUser        = "user"
	CollectionAgent       = "agent"
)
