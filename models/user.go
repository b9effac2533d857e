package models

// User profile. No route persists users in this version; the type pins down
// the collection shape for the admin tooling that writes them.
type User struct {
	Name              string `json:"name" bson:"name" validate:"required"`
	Email             string `json:"email" bson:"email" validate:"required,email"`
	Phone             string `json:"phone,omitempty" bson:"phone,omitempty"`
	Role              string `json:"role" bson:"role" validate:"omitempty,oneof=buyer agent admin"`
	PreferredLanguage string `json:"preferred_language" bson:"preferred_language"`
	AvatarURL         string `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	IsActive          bool   `json:"is_active" bson:"is_active"`
}

func (u *User) SetDefaults() {
	if u.Role == "" {
		u.Role = "buyer"
	}
	if u.PreferredLanguage == "" {
		u.PreferredLanguage = "en"
	}
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
