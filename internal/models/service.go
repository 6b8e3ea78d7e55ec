package models

import "time"

type Service struct {
	ID          string `json:"id"`
	ShopID      string `json:"shop_id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int    `json:"price_cents"`
	Currency        string `json:"currency"`

	IsAddon bool `json:"is_addon"`
	Active  bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
}
