package memstore

import (
	"sync"
	"time"

	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

// Store guarda todo o dataset de demonstração em memória. Criado e populado
// na subida do processo; reiniciar o serviço zera tudo. Leituras devolvem
// cópias para os pipelines puros não enxergarem mutação concorrente.
type Store struct {
	mu sync.RWMutex

	users     map[string]models.User
	barbers   []models.BarberWithDistance
	shops     []models.Shop
	locations []models.Location
	services  []models.Service
	reviews   []models.Review
	products  []models.InventoryProduct

	appointments []models.Appointment

	clients      []models.Client
	transactions []models.Transaction
	payout       models.PayoutSummary
	schedule     []models.ScheduleBlock
	dailyRevenue []models.DailyRevenue
}

// New devolve um store já populado com o dataset de demonstração.
func New() *Store {
	s := &Store{users: make(map[string]models.User)}
	s.seed()
	return s
}

// ===============================
// Users / barbers / shops
// ===============================

func (s *Store) UserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return models.User{}, httperr.ErrBusiness("user_not_found")
}

func (s *Store) Barbers() []models.BarberWithDistance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BarberWithDistance, len(s.barbers))
	copy(out, s.barbers)
	return out
}

func (s *Store) BarberByID(id string) (models.BarberWithDistance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.barbers {
		if b.BarberID == id {
			return b, nil
		}
	}
	return models.BarberWithDistance{}, httperr.ErrBusiness("barber_not_found")
}

func (s *Store) ShopBySlug(slug string) (models.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, shop := range s.shops {
		if shop.BrandSlug == slug {
			return shop, nil
		}
	}
	return models.Shop{}, httperr.ErrBusiness("shop_not_found")
}

func (s *Store) LocationForShop(shopID string) (models.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, loc := range s.locations {
		if loc.ShopID == shopID {
			return loc, nil
		}
	}
	return models.Location{}, httperr.ErrBusiness("location_not_found")
}

// ===============================
// Services / reviews / products
// ===============================

// Services lista os serviços ativos reserváveis.
func (s *Store) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		if svc.Active {
			out = append(out, svc)
		}
	}
	return out
}

func (s *Store) ServiceByID(id string) (models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return models.Service{}, httperr.ErrBusiness("service_not_found")
}

func (s *Store) ReviewsForBarber(barberID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Review{}
	for _, r := range s.reviews {
		if r.BarberUserID == barberID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) Products() []models.InventoryProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.InventoryProduct, len(s.products))
	copy(out, s.products)
	return out
}

// ===============================
// Appointments
// ===============================

func (s *Store) CreateAppointment(ap models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = append(s.appointments, ap)
}

func (s *Store) AppointmentByID(id string) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, ap := range s.appointments {
		if ap.ID == id {
			return ap, nil
		}
	}
	return models.Appointment{}, httperr.ErrBusiness("appointment_not_found")
}

// UpdateAppointment substitui o agendamento de mesmo id.
func (s *Store) UpdateAppointment(ap models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == ap.ID {
			s.appointments[i] = ap
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (s *Store) AppointmentsForClient(clientUserID string) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if ap.ClientUserID == clientUserID {
			out = append(out, ap)
		}
	}
	return out
}

// AppointmentsForBarberOn devolve os agendamentos do barbeiro cujo início cai
// no dia informado.
func (s *Store) AppointmentsForBarberOn(barberUserID string, day time.Time) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.appointments {
		if ap.BarberUserID != barberUserID {
			continue
		}
		local := ap.StartAt.In(day.Location())
		if local.Year() == day.Year() && local.YearDay() == day.YearDay() {
			out = append(out, ap)
		}
	}
	return out
}

// ===============================
// Dashboard data
// ===============================

func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Store) Payout() models.PayoutSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.payout
}

func (s *Store) ScheduleBlocks() []models.ScheduleBlock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ScheduleBlock, len(s.schedule))
	copy(out, s.schedule)
	return out
}

func (s *Store) DailyRevenue() []models.DailyRevenue {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.DailyRevenue, len(s.dailyRevenue))
	copy(out, s.dailyRevenue)
	return out
}
