package models

// Agent is a listing agent's public card. Like User, no route writes agents
// in this version.
type Agent struct {
	Name      string   `json:"name" bson:"name" validate:"required"`
	Email     string   `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone     string   `json:"phone,omitempty" bson:"phone,omitempty"`
	Bio       string   `json:"bio,omitempty" bson:"bio,omitempty"`
	PhotoURL  string   `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	Whatsapp  string   `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	Languages []string `json:"languages" bson:"languages"`
}

func (a *Agent) SetDefaults() {
	if a.Languages == nil {
		a.Languages = []string{"en"}
	}
}
