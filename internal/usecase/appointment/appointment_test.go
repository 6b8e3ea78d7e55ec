package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/logging"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

type fakeRepo struct {
	appointments map[string]models.Appointment
}

func newFakeRepo(appointments ...models.Appointment) *fakeRepo {
	r := &fakeRepo{appointments: map[string]models.Appointment{}}
	for _, ap := range appointments {
		r.appointments[ap.ID] = ap
	}
	return r
}

func (r *fakeRepo) AppointmentByID(id string) (models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		return ap, nil
	}
	return models.Appointment{}, httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) UpdateAppointment(ap models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	r.appointments[ap.ID] = ap
	return nil
}

func (r *fakeRepo) AppointmentsForClient(clientUserID string) []models.Appointment {
	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if ap.ClientUserID == clientUserID {
			out = append(out, ap)
		}
	}
	return out
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(logging.Default()))
}

func confirmed(id, client string, start time.Time) models.Appointment {
	return models.Appointment{
		ID:           id,
		ClientUserID: client,
		BarberUserID: "b1",
		Status:       "confirmed",
		StartAt:      start,
		EndAt:        start.Add(45 * time.Minute),
	}
}

// ===============================
// Cancel
// ===============================

func TestCancelConfirmedAppointment(t *testing.T) {
	repo := newFakeRepo(confirmed("a1", "u1", time.Now().Add(24*time.Hour)))
	uc := NewCancelAppointment(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), "a1", "u1")
	require.NoError(t, err)

	assert.Equal(t, "canceled", ap.Status)
	require.NotNil(t, ap.CancelledAt)
	assert.Equal(t, "canceled", repo.appointments["a1"].Status)
}

func TestCancelRejectsOtherUsersAppointment(t *testing.T) {
	repo := newFakeRepo(confirmed("a1", "u1", time.Now().Add(24*time.Hour)))
	uc := NewCancelAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), "a1", "intruder")
	assert.True(t, httperr.IsBusiness(err, "not_owner"))
	assert.Equal(t, "confirmed", repo.appointments["a1"].Status)
}

func TestCancelRejectsCompletedAppointment(t *testing.T) {
	ap := confirmed("a1", "u1", time.Now().Add(-24*time.Hour))
	ap.Status = "completed"

	repo := newFakeRepo(ap)
	uc := NewCancelAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), "a1", "u1")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

// ===============================
// Check-in / complete
// ===============================

func TestCheckInThenComplete(t *testing.T) {
	repo := newFakeRepo(confirmed("a1", "u1", time.Now()))

	checkIn := NewCheckInAppointment(repo, testDispatcher())
	complete := NewCompleteAppointment(repo, testDispatcher())

	ap, err := checkIn.Execute(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "checked_in", ap.Status)

	// check-in duplicado não é permitido
	_, err = checkIn.Execute(context.Background(), "a1")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	ap, err = complete.Execute(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)
	require.NotNil(t, ap.CompletedAt)
}

// ===============================
// List
// ===============================

func TestListSplitsUpcomingAndPast(t *testing.T) {
	now := time.Now()

	later := confirmed("up2", "u1", now.Add(48*time.Hour))
	sooner := confirmed("up1", "u1", now.Add(2*time.Hour))

	older := confirmed("past2", "u1", now.Add(-72*time.Hour))
	older.Status = "completed"
	recent := confirmed("past1", "u1", now.Add(-24*time.Hour))
	recent.Status = "canceled"

	other := confirmed("other", "u2", now.Add(2*time.Hour))

	repo := newFakeRepo(later, sooner, older, recent, other)
	uc := NewListAppointments(repo)

	out, err := uc.Execute(context.Background(), "u1")
	require.NoError(t, err)

	// próximos em ordem cronológica
	require.Len(t, out.Upcoming, 2)
	assert.Equal(t, "up1", out.Upcoming[0].ID)
	assert.Equal(t, "up2", out.Upcoming[1].ID)

	// histórico do mais recente ao mais antigo
	require.Len(t, out.Past, 2)
	assert.Equal(t, "past1", out.Past[0].ID)
	assert.Equal(t, "past2", out.Past[1].ID)
}
