package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

// ===============================
// Booking Steps
// ===============================

type Step int

const (
	StepServiceSelection Step = iota + 1
	StepDateSelection
	StepTimeSelection
	StepPaymentReview
)

func (s Step) String() string {
	switch s {
	case StepServiceSelection:
		return "service_selection"
	case StepDateSelection:
		return "date_selection"
	case StepTimeSelection:
		return "time_selection"
	case StepPaymentReview:
		return "payment_review"
	}
	return "unknown"
}

// Sinal de 20% cobrado na reserva, arredondado para baixo (truncamento
// inteiro). A política de arredondamento precisa bater com o app.
const depositRateBps = 2000

// ===============================
// Session
// ===============================

// Session é o estado do fluxo de reserva de uma única visita: quatro passos
// lineares, sem pular etapa. Descartada ao confirmar ou sair.
type Session struct {
	ID       string `json:"id"`
	BarberID string `json:"barber_id"`

	Step Step `json:"step"`

	SelectedServices []models.Service `json:"selected_services"`
	SelectedDate     time.Time        `json:"selected_date"`
	SelectedSlot     time.Time        `json:"selected_slot"`

	TotalCents           int `json:"total_cents"`
	TotalDurationMinutes int `json:"total_duration_minutes"`
	DepositCents         int `json:"deposit_cents"`

	CreatedAt time.Time `json:"created_at"`
}

// NewSession inicia o fluxo no primeiro passo, com a data já apontando para
// hoje (o passo de data é válido desde o início).
func NewSession(barberID string, now time.Time) *Session {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return &Session{
		ID:               uuid.NewString(),
		BarberID:         barberID,
		Step:             StepServiceSelection,
		SelectedServices: []models.Service{},
		SelectedDate:     day,
		CreatedAt:        now,
	}
}

// ===============================
// Service selection
// ===============================

// ToggleService adiciona ou remove o serviço da seleção. Alternar duas vezes
// devolve a seleção original; não há entrada duplicada porque o teste de
// pertinência é por id.
func (s *Session) ToggleService(svc models.Service) {
	for i, sel := range s.SelectedServices {
		if sel.ID == svc.ID {
			s.SelectedServices = append(
				s.SelectedServices[:i],
				s.SelectedServices[i+1:]...,
			)
			s.recalcTotals()
			return
		}
	}

	s.SelectedServices = append(s.SelectedServices, svc)
	s.recalcTotals()
}

func (s *Session) recalcTotals() {
	total := 0
	duration := 0
	for _, svc := range s.SelectedServices {
		total += svc.PriceCents
		duration += svc.DurationMinutes
	}

	s.TotalCents = total
	s.TotalDurationMinutes = duration
	s.DepositCents = total * depositRateBps / 10000
}

// ===============================
// Date / time selection
// ===============================

func (s *Session) SelectDate(date time.Time) {
	s.SelectedDate = time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)

	// trocar de dia invalida o horário já escolhido
	if !s.SelectedSlot.IsZero() && !sameDay(s.SelectedSlot, s.SelectedDate) {
		s.SelectedSlot = time.Time{}
	}
}

func (s *Session) SelectSlot(slot time.Time) error {
	if slot.IsZero() {
		return httperr.ErrBusiness("invalid_slot")
	}
	if !sameDay(slot, s.SelectedDate) {
		return httperr.ErrBusiness("slot_outside_selected_date")
	}
	if !onSlotGrid(slot) {
		return httperr.ErrBusiness("slot_outside_grid")
	}

	s.SelectedSlot = slot
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// ===============================
// Step transitions
// ===============================

// StepValid é o predicado de validade que libera o avanço do passo atual.
func (s *Session) StepValid() bool {
	switch s.Step {
	case StepServiceSelection:
		return len(s.SelectedServices) > 0
	case StepDateSelection:
		return !s.SelectedDate.IsZero()
	case StepTimeSelection:
		return !s.SelectedSlot.IsZero()
	case StepPaymentReview:
		return true
	}
	return false
}

// Next avança um passo se o atual estiver válido. Nunca pula etapas.
func (s *Session) Next() error {
	if !s.StepValid() {
		return httperr.ErrBusiness("step_incomplete")
	}
	if s.Step == StepPaymentReview {
		return httperr.ErrBusiness("already_at_review")
	}

	s.Step++
	return nil
}

// Back recua um passo. No primeiro passo devolve true: o fluxo termina e a
// sessão deve ser descartada pelo chamador.
func (s *Session) Back() (exited bool) {
	if s.Step == StepServiceSelection {
		return true
	}

	s.Step--
	return false
}

// CanConfirm indica se a sessão chegou à revisão de pagamento pronta para
// emitir a reserva.
func (s *Session) CanConfirm() bool {
	return s.Step == StepPaymentReview &&
		len(s.SelectedServices) > 0 &&
		!s.SelectedSlot.IsZero()
}
