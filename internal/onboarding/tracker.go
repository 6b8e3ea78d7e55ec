package onboarding

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/barberhub/internal/kvstore"
	"github.com/BruksfildServices01/barberhub/internal/logging"
)

// Chave e valor literais do flag de onboarding. Ausente = incompleto.
const (
	storageKey    = "barberhub:onboarding_complete"
	completeValue = "true"
)

type State string

const (
	StateUnknown    State = "unknown"
	StateIncomplete State = "incomplete"
	StateComplete   State = "complete"
)

// Tracker carrega o ciclo de vida do flag de onboarding: desconhecido até a
// primeira leitura, depois completo ou incompleto. Lido uma vez na subida e
// escrito uma vez quando o onboarding termina. Falha de leitura é logada e
// tratada como incompleto, reabrindo o onboarding no próximo launch.
type Tracker struct {
	mu sync.Mutex

	kv  kvstore.Store
	log *logging.Logger

	state State
}

func NewTracker(kv kvstore.Store, log *logging.Logger) *Tracker {
	return &Tracker{
		kv:    kv,
		log:   log,
		state: StateUnknown,
	}
}

// Check resolve o estado na primeira chamada e devolve o valor em cache nas
// seguintes.
func (t *Tracker) Check(ctx context.Context) State {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateUnknown {
		return t.state
	}

	value, ok, err := t.kv.Get(ctx, storageKey)
	if err != nil {
		t.log.Warn("onboarding flag read failed, treating as incomplete", "error", err)
		t.state = StateIncomplete
		return t.state
	}

	if ok && value == completeValue {
		t.state = StateComplete
	} else {
		t.state = StateIncomplete
	}

	return t.state
}

// Complete grava o flag e marca o estado como completo. Falha de escrita é
// logada e não interrompe o usuário: o flag simplesmente não persiste.
func (t *Tracker) Complete(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.kv.Set(ctx, storageKey, completeValue); err != nil {
		t.log.Warn("onboarding flag write failed", "error", err)
	}

	t.state = StateComplete
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}
