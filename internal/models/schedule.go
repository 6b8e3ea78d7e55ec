package models

import "time"

type ScheduleBlockStatus string

const (
	BlockConfirmed ScheduleBlockStatus = "confirmed"
	BlockCheckedIn ScheduleBlockStatus = "checked_in"
	BlockWalkIn    ScheduleBlockStatus = "walk_in"
	BlockBlocked   ScheduleBlockStatus = "blocked"
	BlockAvailable ScheduleBlockStatus = "available"
)

// ScheduleBlock é um bloco da agenda diária do barbeiro.
type ScheduleBlock struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name,omitempty"`
	Service    string `json:"service"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status      ScheduleBlockStatus `json:"status"`
	AmountCents int                 `json:"amount_cents,omitempty"`
	DepositPaid bool                `json:"deposit_paid"`

	ClientPhone string `json:"client_phone,omitempty"`
}
