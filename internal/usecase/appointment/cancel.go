package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	domain "github.com/BruksfildServices01/barberhub/internal/domain/appointment"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

type CancelAppointment struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(repo Repository, audit *audit.Dispatcher) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id string,
	clientUserID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.AppointmentByID(id)
	if err != nil {
		return nil, err
	}

	if ap.ClientUserID != clientUserID {
		return nil, httperr.ErrBusiness("not_owner")
	}

	if err := domain.Cancel(&ap, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ShopID:   ap.ShopID,
		UserID:   clientUserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return &ap, nil
}
