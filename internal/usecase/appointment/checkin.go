package appointment

import (
	"context"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	domain "github.com/BruksfildServices01/barberhub/internal/domain/appointment"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

type CheckInAppointment struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewCheckInAppointment(repo Repository, audit *audit.Dispatcher) *CheckInAppointment {
	return &CheckInAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CheckInAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.AppointmentByID(id)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckIn(&ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   ap.ShopID,
		UserID:   ap.BarberUserID,
		Action:   "appointment_checked_in",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return &ap, nil
}
