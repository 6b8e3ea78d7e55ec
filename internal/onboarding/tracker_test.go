package onboarding

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberhub/internal/kvstore"
	"github.com/BruksfildServices01/barberhub/internal/logging"
)

func newTestTracker(t *testing.T) (*Tracker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	kv := kvstore.NewRedisWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	return NewTracker(kv, logging.Default()), mr
}

func TestCheckWithoutFlagIsIncomplete(t *testing.T) {
	tracker, _ := newTestTracker(t)

	assert.Equal(t, StateUnknown, tracker.State())
	assert.Equal(t, StateIncomplete, tracker.Check(context.Background()))
	assert.Equal(t, StateIncomplete, tracker.State())
}

func TestCheckReadsPersistedFlag(t *testing.T) {
	tracker, mr := newTestTracker(t)

	require.NoError(t, mr.Set("barberhub:onboarding_complete", "true"))

	assert.Equal(t, StateComplete, tracker.Check(context.Background()))
}

func TestCheckIgnoresUnexpectedValue(t *testing.T) {
	tracker, mr := newTestTracker(t)

	require.NoError(t, mr.Set("barberhub:onboarding_complete", "yes"))

	assert.Equal(t, StateIncomplete, tracker.Check(context.Background()))
}

func TestCompletePersistsFlag(t *testing.T) {
	tracker, mr := newTestTracker(t)

	tracker.Complete(context.Background())

	assert.Equal(t, StateComplete, tracker.State())

	value, err := mr.Get("barberhub:onboarding_complete")
	require.NoError(t, err)
	assert.Equal(t, "true", value)
}

func TestCheckCachesFirstResult(t *testing.T) {
	tracker, mr := newTestTracker(t)

	assert.Equal(t, StateIncomplete, tracker.Check(context.Background()))

	// mudanças posteriores no storage não afetam o valor em cache
	require.NoError(t, mr.Set("barberhub:onboarding_complete", "true"))
	assert.Equal(t, StateIncomplete, tracker.Check(context.Background()))
}

func TestReadFailureIsTreatedAsIncomplete(t *testing.T) {
	mr := miniredis.RunT(t)
	kv := kvstore.NewRedisWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	tracker := NewTracker(kv, logging.Default())

	// storage fora do ar: o app abre o onboarding de novo em vez de falhar
	mr.Close()

	assert.Equal(t, StateIncomplete, tracker.Check(context.Background()))
}
