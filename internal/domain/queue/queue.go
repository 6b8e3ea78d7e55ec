package queue

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/validators"
)

// Espera acima de 20 minutos é sinalizada na fila. Limite de exibição,
// não regra de negócio.
const longWaitMinutes = 20

// Ticket médio usado na estimativa de receita da fila.
const averageTicketCents = 4500

// ===============================
// Queue
// ===============================

// Queue é a lista ordenada de clientes walk-in. FIFO por hora de chegada;
// posição e tempo de espera são recalculados a cada leitura, nunca
// armazenados. Um cliente concluído permanece visível por um curto intervalo
// antes de sair da lista.
type Queue struct {
	mu sync.Mutex

	now          func() time.Time
	displayDelay time.Duration

	entries []entry
}

type entry struct {
	customer models.QueueCustomer

	// momento em que a entrada concluída deixa de ser exibida
	removeAt time.Time
}

func New(displayDelay time.Duration) *Queue {
	return NewWithClock(displayDelay, time.Now)
}

func NewWithClock(displayDelay time.Duration, now func() time.Time) *Queue {
	return &Queue{
		now:          now,
		displayDelay: displayDelay,
	}
}

// ===============================
// Operations
// ===============================

type EnqueueInput struct {
	Name              string
	Phone             string
	Service           string
	EstimatedDuration int
	Notes             string
}

func (q *Queue) Enqueue(in EnqueueInput) (models.QueueCustomer, error) {
	if in.Name == "" {
		return models.QueueCustomer{}, httperr.ErrBusiness("name_required")
	}
	if in.Service == "" {
		return models.QueueCustomer{}, httperr.ErrBusiness("service_required")
	}
	if in.Phone != "" && !validators.IsPhoneValid(in.Phone) {
		return models.QueueCustomer{}, httperr.ErrBusiness("invalid_phone")
	}

	customer := models.QueueCustomer{
		ID:                uuid.NewString(),
		Name:              in.Name,
		Phone:             validators.NormalizePhone(in.Phone),
		Service:           in.Service,
		EstimatedDuration: in.EstimatedDuration,
		AddedAt:           q.now(),
		Status:            models.QueueWaiting,
		Notes:             in.Notes,
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.prune()
	q.entries = append(q.entries, entry{customer: customer})

	return customer, nil
}

// StartService move um cliente de waiting para in_progress. Só pode haver um
// atendimento em curso por vez; iniciar outro com um já aberto é rejeitado.
func (q *Queue) StartService(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.prune()

	for _, e := range q.entries {
		if e.customer.Status == models.QueueInProgress {
			return httperr.ErrBusiness("service_already_in_progress")
		}
	}

	for i, e := range q.entries {
		if e.customer.ID == id {
			if e.customer.Status != models.QueueWaiting {
				return httperr.ErrBusiness("customer_not_waiting")
			}
			q.entries[i].customer.Status = models.QueueInProgress
			return nil
		}
	}

	return httperr.ErrBusiness("customer_not_found")
}

// CompleteService conclui o atendimento em curso. O cliente continua visível
// como concluído pelo intervalo de exibição e depois sai da fila.
func (q *Queue) CompleteService(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.prune()

	for i, e := range q.entries {
		if e.customer.ID == id {
			if e.customer.Status != models.QueueInProgress {
				return httperr.ErrBusiness("customer_not_in_service")
			}
			q.entries[i].customer.Status = models.QueueCompleted
			q.entries[i].removeAt = q.now().Add(q.displayDelay)
			return nil
		}
	}

	return httperr.ErrBusiness("customer_not_found")
}

// MarkNoShow remove o cliente imediatamente, sem registro terminal.
func (q *Queue) MarkNoShow(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.prune()

	for i, e := range q.entries {
		if e.customer.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return nil
		}
	}

	return httperr.ErrBusiness("customer_not_found")
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.prune()
	return len(q.entries)
}

// prune descarta concluídos cujo intervalo de exibição terminou.
// Chamar sempre com o mutex em mãos.
func (q *Queue) prune() {
	now := q.now()

	kept := q.entries[:0]
	for _, e := range q.entries {
		if !e.removeAt.IsZero() && !now.Before(e.removeAt) {
			continue
		}
		kept = append(kept, e)
	}
	q.entries = kept
}

// ===============================
// Snapshot
// ===============================

// WaitingCustomer é a visão de exibição de um cliente na fila: posição
// 1-based dentro do subconjunto waiting e minutos de espera (piso).
type WaitingCustomer struct {
	models.QueueCustomer

	Position       int  `json:"position"`
	MinutesWaiting int  `json:"minutes_waiting"`
	LongWait       bool `json:"long_wait"`
}

type Snapshot struct {
	Waiting    []WaitingCustomer      `json:"waiting"`
	InProgress *models.QueueCustomer  `json:"in_progress,omitempty"`
	Completed  []models.QueueCustomer `json:"completed"`

	TotalWaitMinutes      int `json:"total_wait_minutes"`
	EstimatedRevenueCents int `json:"estimated_revenue_cents"`
}

func (q *Queue) Snapshot() Snapshot {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.prune()
	now := q.now()

	snap := Snapshot{
		Waiting:   []WaitingCustomer{},
		Completed: []models.QueueCustomer{},
	}

	for _, e := range q.entries {
		switch e.customer.Status {
		case models.QueueWaiting:
			minutes := int(now.Sub(e.customer.AddedAt) / time.Minute)

			snap.Waiting = append(snap.Waiting, WaitingCustomer{
				QueueCustomer:  e.customer,
				Position:       len(snap.Waiting) + 1,
				MinutesWaiting: minutes,
				LongWait:       minutes > longWaitMinutes,
			})
			snap.TotalWaitMinutes += e.customer.EstimatedDuration

		case models.QueueInProgress:
			customer := e.customer
			snap.InProgress = &customer

		case models.QueueCompleted:
			snap.Completed = append(snap.Completed, e.customer)
		}
	}

	snap.EstimatedRevenueCents = len(snap.Waiting) * averageTicketCents

	return snap
}
