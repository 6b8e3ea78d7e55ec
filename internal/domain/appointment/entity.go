package appointment

import (
	"time"

	"github.com/BruksfildServices01/barberhub/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCanceled)
	ap.CancelledAt = &now
	return nil
}

func CheckIn(ap *models.Appointment) error {
	if err := CanCheckIn(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCheckedIn)
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// MarkNoShow mantém o registro com status terminal, ao contrário da fila de
// walk-in, que remove o cliente sem deixar rastro.
func MarkNoShow(ap *models.Appointment) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}

// IsUpcoming diz se o agendamento ainda vai acontecer.
func IsUpcoming(ap *models.Appointment, now time.Time) bool {
	return Status(ap.Status) == StatusConfirmed && ap.StartAt.After(now)
}
