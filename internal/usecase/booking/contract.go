package booking

import (
	"time"

	"github.com/BruksfildServices01/barberhub/internal/models"
)

// Repository é o que o fluxo de reserva precisa do dataset.
type Repository interface {
	BarberByID(id string) (models.BarberWithDistance, error)
	ServiceByID(id string) (models.Service, error)
	AppointmentsForBarberOn(barberUserID string, day time.Time) []models.Appointment
	CreateAppointment(ap models.Appointment)
}
