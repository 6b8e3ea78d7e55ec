package models

import "time"

// Client é o registro de gestão de clientes do painel do barbeiro.
type Client struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`

	LastVisit   time.Time `json:"last_visit"`
	TotalVisits int       `json:"total_visits"`

	TotalSpentCents    int `json:"total_spent_cents"`
	LifetimeValueCents int `json:"lifetime_value_cents"`

	PreferredServices []string `json:"preferred_services"`
	Notes             string   `json:"notes,omitempty"`

	NoShowCount   int     `json:"no_show_count"`
	CancelCount   int     `json:"cancel_count"`
	AverageRating float64 `json:"average_rating"`

	Tags []string `json:"tags"`
}
