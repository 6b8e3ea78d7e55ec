package appointment

import "github.com/BruksfildServices01/barberhub/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusCheckedIn Status = "checked_in"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
	StatusNoShow    Status = "no_show"
	StatusDisputed  Status = "disputed"
)

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCheckIn define se o cliente pode fazer check-in
func CanCheckIn(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusConfirmed && current != StatusCheckedIn {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanMarkNoShow define se um agendamento pode virar falta
func CanMarkNoShow(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus valida status inicial de uma reserva confirmada
func InitialStatus() Status {
	return StatusConfirmed
}
