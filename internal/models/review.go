package models

import "time"

// Review vinculado a um agendamento concluído. Rating inteiro de 1 a 5.
type Review struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointment_id"`
	ClientUserID  string `json:"client_user_id"`
	BarberUserID  string `json:"barber_user_id"`

	Rating int    `json:"rating"`
	Text   string `json:"text"`

	Client *User `json:"client,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
