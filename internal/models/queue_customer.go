package models

import "time"

type QueueStatus string

const (
	QueueWaiting    QueueStatus = "waiting"
	QueueInProgress QueueStatus = "in_progress"
	QueueCompleted  QueueStatus = "completed"
	QueueNoShow     QueueStatus = "no_show"
)

// QueueCustomer é um cliente walk-in aguardando atendimento. Vive apenas em
// memória: entra na fila manualmente e sai ao concluir ou faltar.
type QueueCustomer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`

	Service           string `json:"service"`
	EstimatedDuration int    `json:"estimated_duration"`

	AddedAt time.Time   `json:"added_at"`
	Status  QueueStatus `json:"status"`

	Notes string `json:"notes,omitempty"`
}
