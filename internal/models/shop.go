package models

import "time"

type Shop struct {
	ID           string `json:"id"`
	OwnerUserID  string `json:"owner_user_id"`
	Name         string `json:"name"`
	BrandSlug    string `json:"brand_slug"`
	Description  string `json:"description"`
	SupportPhone string `json:"support_phone"`
	Timezone     string `json:"timezone"`

	LogoURL       string `json:"logo_url,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
