package discovery

import (
	"sort"
	"strings"

	"github.com/BruksfildServices01/barberhub/internal/models"
)

// ===============================
// Sort keys
// ===============================

type SortKey string

const (
	SortDistance     SortKey = "distance"
	SortRating       SortKey = "rating"
	SortAvailability SortKey = "availability"
)

func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortRating:
		return SortRating
	case SortAvailability:
		return SortAvailability
	default:
		return SortDistance
	}
}

// ===============================
// Pipeline
// ===============================

// Search aplica filtro e ordenação sobre a lista de barbeiros. Funções
// puras: a lista de entrada nunca é mutada e chamadas repetidas com os
// mesmos argumentos produzem o mesmo resultado.
func Search(
	barbers []models.BarberWithDistance,
	query string,
	specialties []string,
	key SortKey,
) []models.BarberWithDistance {
	return Sort(Filter(barbers, query, specialties), key)
}

// Filter mantém os barbeiros cujo nome, especialidade ou loja contém o texto
// buscado E cuja lista de especialidades intersecta a seleção. Busca vazia
// casa com todos; seleção vazia não filtra nada.
func Filter(
	barbers []models.BarberWithDistance,
	query string,
	specialties []string,
) []models.BarberWithDistance {
	q := strings.ToLower(strings.TrimSpace(query))

	result := make([]models.BarberWithDistance, 0, len(barbers))
	for _, barber := range barbers {
		if matchesQuery(barber, q) && matchesSpecialties(barber, specialties) {
			result = append(result, barber)
		}
	}

	return result
}

func matchesQuery(barber models.BarberWithDistance, q string) bool {
	if q == "" {
		return true
	}

	if strings.Contains(strings.ToLower(barber.User.DisplayName), q) {
		return true
	}

	for _, specialty := range barber.Specialties {
		if strings.Contains(strings.ToLower(specialty), q) {
			return true
		}
	}

	if barber.Shop != nil && strings.Contains(strings.ToLower(barber.Shop.Name), q) {
		return true
	}

	return false
}

func matchesSpecialties(barber models.BarberWithDistance, selected []string) bool {
	if len(selected) == 0 {
		return true
	}

	for _, want := range selected {
		for _, have := range barber.Specialties {
			if have == want {
				return true
			}
		}
	}

	return false
}

// Sort devolve uma cópia ordenada. A ordenação é estável: pares sem critério
// definido (por exemplo, ambos sem próximo horário) preservam a ordem
// relativa de entrada.
func Sort(barbers []models.BarberWithDistance, key SortKey) []models.BarberWithDistance {
	sorted := make([]models.BarberWithDistance, len(barbers))
	copy(sorted, barbers)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		switch key {
		case SortRating:
			return a.RatingAvg > b.RatingAvg

		case SortAvailability:
			if a.NextAvailableSlot == nil || b.NextAvailableSlot == nil {
				return false
			}
			return a.NextAvailableSlot.Before(*b.NextAvailableSlot)

		default: // SortDistance, distância ausente conta como 0
			return distanceOrZero(a) < distanceOrZero(b)
		}
	})

	return sorted
}

func distanceOrZero(b models.BarberWithDistance) float64 {
	if b.Distance == nil {
		return 0
	}
	return *b.Distance
}
