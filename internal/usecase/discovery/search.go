package discovery

import (
	"context"

	domain "github.com/BruksfildServices01/barberhub/internal/domain/discovery"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

type Repository interface {
	Barbers() []models.BarberWithDistance
}

type SearchInput struct {
	Query       string
	Specialties []string
	SortBy      domain.SortKey
}

type SearchBarbers struct {
	repo Repository
}

func NewSearchBarbers(repo Repository) *SearchBarbers {
	return &SearchBarbers{repo: repo}
}

func (uc *SearchBarbers) Execute(
	ctx context.Context,
	in SearchInput,
) []models.BarberWithDistance {
	return domain.Search(uc.repo.Barbers(), in.Query, in.Specialties, in.SortBy)
}
