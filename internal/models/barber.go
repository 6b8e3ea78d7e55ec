package models

import "time"

type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
	VerificationRejected   VerificationStatus = "rejected"
)

type Barber struct {
	BarberID        string   `json:"barber_id"`
	Bio             string   `json:"bio"`
	Specialties     []string `json:"specialties"`
	Languages       []string `json:"languages"`
	YearsExperience int      `json:"years_experience"`
	InstagramHandle string   `json:"instagram_handle,omitempty"`

	PortfolioCoverURL string   `json:"portfolio_cover_url"`
	PortfolioImages   []string `json:"portfolio_images"`

	VerificationStatus VerificationStatus `json:"verification_status"`

	// ratingAvg sempre em [0,5], ratingCount >= 0
	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int     `json:"rating_count"`

	User User `json:"user"`
}

// BarberWithDistance é a visão de descoberta: barbeiro + contexto de loja
// e distância/próximo horário quando conhecidos.
type BarberWithDistance struct {
	Barber

	Distance          *float64   `json:"distance,omitempty"`
	Shop              *Shop      `json:"shop,omitempty"`
	Location          *Location  `json:"location,omitempty"`
	NextAvailableSlot *time.Time `json:"next_available_slot,omitempty"`
}
