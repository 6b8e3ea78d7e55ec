package models

import "time"

type RoleFlags struct {
	IsClient bool `json:"is_client"`
	IsBarber bool `json:"is_barber"`
	IsOwner  bool `json:"is_owner"`
}

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email,omitempty"`
	PhoneE164   string    `json:"phone_e164,omitempty"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	RoleFlags   RoleFlags `json:"role_flags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
