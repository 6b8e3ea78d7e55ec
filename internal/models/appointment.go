package models

import "time"

type Appointment struct {
	ID string `json:"id"`

	ClientUserID string `json:"client_user_id"`
	BarberUserID string `json:"barber_user_id"`
	ShopID       string `json:"shop_id"`
	LocationID   string `json:"location_id"`

	Status string `json:"status"`

	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	QuotedTotalCents     int `json:"quoted_total_cents"`
	AppliedDiscountCents int `json:"applied_discount_cents"`
	DepositCents         int `json:"deposit_cents"`

	Barber   *BarberWithDistance `json:"barber,omitempty"`
	Shop     *Shop               `json:"shop,omitempty"`
	Location *Location           `json:"location,omitempty"`

	Services []AppointmentLineItem `json:"services"`

	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// AppointmentLineItem é um snapshot imutável do serviço no momento da
// reserva. Nome, duração e preço são copiados, nunca referenciados, para
// que edições futuras do serviço não alterem agendamentos históricos.
type AppointmentLineItem struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointment_id"`
	ServiceID     string `json:"service_id,omitempty"`

	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int    `json:"price_cents"`
}
