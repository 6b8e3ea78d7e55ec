package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	apdomain "github.com/BruksfildServices01/barberhub/internal/domain/appointment"
	domain "github.com/BruksfildServices01/barberhub/internal/domain/booking"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type ConfirmBooking struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewConfirmBooking(repo Repository, audit *audit.Dispatcher) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute fecha a sessão de reserva: congela os serviços escolhidos em line
// items e emite o agendamento confirmado com total e sinal calculados na
// sessão.
func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	clientUserID string,
	sess domain.Session,
) (*models.Appointment, error) {

	if !sess.CanConfirm() {
		return nil, httperr.ErrBusiness("booking_not_ready")
	}

	barber, err := uc.repo.BarberByID(sess.BarberID)
	if err != nil {
		return nil, err
	}

	// conflito de horário contra a agenda atual do barbeiro
	start := sess.SelectedSlot
	end := start.Add(time.Duration(sess.TotalDurationMinutes) * time.Minute)

	for _, ap := range uc.repo.AppointmentsForBarberOn(barber.BarberID, start) {
		if apdomain.Status(ap.Status) == apdomain.StatusCanceled {
			continue
		}
		if start.Before(ap.EndAt) && end.After(ap.StartAt) {
			return nil, httperr.ErrBusiness("time_conflict")
		}
	}

	appointmentID := uuid.NewString()

	items := make([]models.AppointmentLineItem, 0, len(sess.SelectedServices))
	for _, svc := range sess.SelectedServices {
		items = append(items, models.AppointmentLineItem{
			ID:              uuid.NewString(),
			AppointmentID:   appointmentID,
			ServiceID:       svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			PriceCents:      svc.PriceCents,
		})
	}

	shopID := ""
	locationID := ""
	if barber.Shop != nil {
		shopID = barber.Shop.ID
	}
	if barber.Location != nil {
		locationID = barber.Location.ID
	}

	ap := &models.Appointment{
		ID:               appointmentID,
		ClientUserID:     clientUserID,
		BarberUserID:     barber.BarberID,
		ShopID:           shopID,
		LocationID:       locationID,
		Status:           string(apdomain.InitialStatus()),
		StartAt:          start,
		EndAt:            end,
		QuotedTotalCents: sess.TotalCents,
		DepositCents:     sess.DepositCents,
		Barber:           &barber,
		Shop:             barber.Shop,
		Location:         barber.Location,
		Services:         items,
		CreatedAt:        time.Now(),
	}

	uc.repo.CreateAppointment(*ap)

	uc.audit.Dispatch(audit.Event{
		ShopID:   shopID,
		UserID:   clientUserID,
		Action:   "booking_confirmed",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]int{
			"total_cents":   ap.QuotedTotalCents,
			"deposit_cents": ap.DepositCents,
		},
	})

	return ap, nil
}
