package appointment

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/barberhub/internal/domain/appointment"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

type ListOutput struct {
	Upcoming []models.Appointment `json:"upcoming"`
	Past     []models.Appointment `json:"past"`
}

type ListAppointments struct {
	repo Repository
	now  func() time.Time
}

func NewListAppointments(repo Repository) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	clientUserID string,
) (ListOutput, error) {

	all := uc.repo.AppointmentsForClient(clientUserID)
	now := uc.now()

	out := ListOutput{
		Upcoming: []models.Appointment{},
		Past:     []models.Appointment{},
	}

	for _, ap := range all {
		if domain.IsUpcoming(&ap, now) {
			out.Upcoming = append(out.Upcoming, ap)
			continue
		}
		out.Past = append(out.Past, ap)
	}

	// Próximos em ordem cronológica, histórico do mais recente ao mais antigo
	sort.SliceStable(out.Upcoming, func(i, j int) bool {
		return out.Upcoming[i].StartAt.Before(out.Upcoming[j].StartAt)
	})
	sort.SliceStable(out.Past, func(i, j int) bool {
		return out.Past[i].StartAt.After(out.Past[j].StartAt)
	})

	return out, nil
}
