package models

const (
	MaintenanceStatusOpen       = "open"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusResolved   = "resolved"
	MaintenanceStatusClosed     = "closed"
)

// IsValidMaintenanceStatus reports whether s belongs to the enumerated
// status set. The PATCH endpoint rejects anything else; transition order is
// not enforced, a request may be reopened.
func IsValidMaintenanceStatus(s string) bool {
	switch s {
	case MaintenanceStatusOpen, MaintenanceStatusInProgress,
		MaintenanceStatusResolved, MaintenanceStatusClosed:
		return true
	}
	return false
}

// MaintenanceRequest is a building-maintenance ticket, independent of the
// property listings. status is the only field that mutates after creation.
type MaintenanceRequest struct {
	Building     string   `json:"building" bson:"building" validate:"required"`
	Unit         string   `json:"unit,omitempty" bson:"unit,omitempty"`
	Category     string   `json:"category" bson:"category" validate:"required"`
	Priority     string   `json:"priority" bson:"priority" validate:"omitempty,oneof=low medium high urgent"`
	Description  string   `json:"description,omitempty" bson:"description,omitempty"`
	Status       string   `json:"status" bson:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	RequestedBy  string   `json:"requested_by,omitempty" bson:"requested_by,omitempty"`
	ContactPhone string   `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
	Photos       []string `json:"photos" bson:"photos"`
}

func (m *MaintenanceRequest) SetDefaults() {
	if m.Priority == "" {
		m.Priority = "medium"
	}
	if m.Status == "" {
		m.Status = MaintenanceStatusOpen
	}
	if m.Photos == nil {
		m.Photos = []string{}
	}
}
