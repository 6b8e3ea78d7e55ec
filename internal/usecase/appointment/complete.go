package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	domain "github.com/BruksfildServices01/barberhub/internal/domain/appointment"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

type CompleteAppointment struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(repo Repository, audit *audit.Dispatcher) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	ap, err := uc.repo.AppointmentByID(id)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(&ap, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   ap.ShopID,
		UserID:   ap.BarberUserID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return &ap, nil
}
