package booking

import (
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barberhub/internal/domain/booking"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
)

// SessionStore guarda as sessões de reserva abertas, uma por fluxo em
// andamento. Sessões vivem só em memória e somem ao confirmar ou sair.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
	}
}

func (s *SessionStore) Create(barberID string, now time.Time) *domain.Session {
	sess := domain.NewSession(barberID, now)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = sess
	return sess
}

// Update aplica fn à sessão com o lock em mãos e devolve o estado
// resultante. Toda mutação de sessão passa por aqui.
func (s *SessionStore) Update(id string, fn func(*domain.Session) error) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, httperr.ErrBusiness("session_not_found")
	}

	if err := fn(sess); err != nil {
		return domain.Session{}, err
	}

	return *sess, nil
}

func (s *SessionStore) Get(id string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, httperr.ErrBusiness("session_not_found")
	}
	return *sess, nil
}

func (s *SessionStore) Discard(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}
