package appointment

import "github.com/BruksfildServices01/barberhub/internal/models"

type Repository interface {
	AppointmentByID(id string) (models.Appointment, error)
	UpdateAppointment(ap models.Appointment) error
	AppointmentsForClient(clientUserID string) []models.Appointment
}
