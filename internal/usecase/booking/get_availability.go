package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barberhub/internal/domain/booking"
	"github.com/BruksfildServices01/barberhub/internal/timezone"
)

type AvailabilityInput struct {
	BarberID string
	Date     time.Time
}

type GetAvailability struct {
	repo Repository
}

func NewGetAvailability(repo Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute monta a grade de horários do dia e resolve a disponibilidade de
// cada slot contra a agenda do barbeiro. Determinístico: a mesma data com a
// mesma agenda produz sempre a mesma grade.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.Slot, error) {

	barber, err := uc.repo.BarberByID(in.BarberID)
	if err != nil {
		return nil, err
	}

	tz := timezone.DefaultTimezone
	if barber.Shop != nil {
		tz = barber.Shop.Timezone
	}
	loc := timezone.Location(tz)

	date := in.Date.In(loc)
	starts := domain.GenerateTimeSlots(date, loc)

	appointments := uc.repo.AppointmentsForBarberOn(barber.BarberID, date)

	return domain.MarkAvailability(starts, appointments), nil
}
