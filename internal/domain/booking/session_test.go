package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

func svc(id string, priceCents, durationMinutes int) models.Service {
	return models.Service{
		ID:              id,
		Name:            "Service " + id,
		PriceCents:      priceCents,
		DurationMinutes: durationMinutes,
		Active:          true,
	}
}

func TestNewSessionStartsAtServiceSelection(t *testing.T) {
	now := time.Date(2026, 2, 17, 10, 30, 0, 0, time.UTC)
	sess := NewSession("b1", now)

	assert.Equal(t, StepServiceSelection, sess.Step)
	assert.Empty(t, sess.SelectedServices)

	// a data já nasce apontando para hoje
	assert.Equal(t, time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC), sess.SelectedDate)
	assert.NotEmpty(t, sess.ID)
}

func TestToggleServiceIsIdempotentPairwise(t *testing.T) {
	sess := NewSession("b1", time.Now())

	fade := svc("svc1", 4500, 45)
	beard := svc("svc2", 3000, 30)

	sess.ToggleService(fade)
	sess.ToggleService(beard)
	require.Len(t, sess.SelectedServices, 2)
	assert.Equal(t, 7500, sess.TotalCents)
	assert.Equal(t, 75, sess.TotalDurationMinutes)
	assert.Equal(t, 1500, sess.DepositCents)

	// alternar de novo remove, voltando ao estado anterior
	sess.ToggleService(beard)
	require.Len(t, sess.SelectedServices, 1)
	assert.Equal(t, "svc1", sess.SelectedServices[0].ID)
	assert.Equal(t, 4500, sess.TotalCents)
	assert.Equal(t, 900, sess.DepositCents)
}

func TestDepositIsTwentyPercentRoundedDown(t *testing.T) {
	sess := NewSession("b1", time.Now())

	// 4999 * 20% = 999.8 → 999
	sess.ToggleService(svc("odd", 4999, 30))
	assert.Equal(t, 999, sess.DepositCents)

	sess.ToggleService(svc("odd", 4999, 30))
	assert.Equal(t, 0, sess.DepositCents)
}

func TestNextRequiresValidStep(t *testing.T) {
	sess := NewSession("b1", time.Now())

	// sem serviço selecionado o primeiro passo não libera
	err := sess.Next()
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "step_incomplete"))
	assert.Equal(t, StepServiceSelection, sess.Step)

	sess.ToggleService(svc("svc1", 4500, 45))
	require.NoError(t, sess.Next())
	assert.Equal(t, StepDateSelection, sess.Step)

	// data já é válida desde a criação
	require.NoError(t, sess.Next())
	assert.Equal(t, StepTimeSelection, sess.Step)

	err = sess.Next()
	assert.True(t, httperr.IsBusiness(err, "step_incomplete"))

	slot := time.Date(
		sess.SelectedDate.Year(), sess.SelectedDate.Month(), sess.SelectedDate.Day(),
		14, 0, 0, 0, sess.SelectedDate.Location(),
	)
	require.NoError(t, sess.SelectSlot(slot))
	require.NoError(t, sess.Next())
	assert.Equal(t, StepPaymentReview, sess.Step)

	err = sess.Next()
	assert.True(t, httperr.IsBusiness(err, "already_at_review"))
}

func TestBackExitsAtFirstStep(t *testing.T) {
	sess := NewSession("b1", time.Now())

	sess.ToggleService(svc("svc1", 4500, 45))
	require.NoError(t, sess.Next())

	assert.False(t, sess.Back())
	assert.Equal(t, StepServiceSelection, sess.Step)

	// no primeiro passo, voltar encerra o fluxo
	assert.True(t, sess.Back())
	assert.Equal(t, StepServiceSelection, sess.Step)
}

func TestBackPreservesSelections(t *testing.T) {
	sess := NewSession("b1", time.Now())
	sess.ToggleService(svc("svc1", 4500, 45))

	require.NoError(t, sess.Next())
	require.NoError(t, sess.Next())

	slot := time.Date(
		sess.SelectedDate.Year(), sess.SelectedDate.Month(), sess.SelectedDate.Day(),
		9, 30, 0, 0, sess.SelectedDate.Location(),
	)
	require.NoError(t, sess.SelectSlot(slot))

	sess.Back()
	sess.Back()

	assert.Len(t, sess.SelectedServices, 1)
	assert.Equal(t, slot, sess.SelectedSlot)
}

func TestSelectDateClearsSlotOnDayChange(t *testing.T) {
	loc := time.UTC
	sess := NewSession("b1", time.Date(2026, 2, 17, 8, 0, 0, 0, loc))

	slot := time.Date(2026, 2, 17, 14, 0, 0, 0, loc)
	require.NoError(t, sess.SelectSlot(slot))

	// mesma data não invalida o horário
	sess.SelectDate(time.Date(2026, 2, 17, 23, 0, 0, 0, loc))
	assert.Equal(t, slot, sess.SelectedSlot)

	sess.SelectDate(time.Date(2026, 2, 18, 0, 0, 0, 0, loc))
	assert.True(t, sess.SelectedSlot.IsZero())
}

func TestSelectSlotRejectsOtherDay(t *testing.T) {
	loc := time.UTC
	sess := NewSession("b1", time.Date(2026, 2, 17, 8, 0, 0, 0, loc))

	err := sess.SelectSlot(time.Date(2026, 2, 18, 14, 0, 0, 0, loc))
	assert.True(t, httperr.IsBusiness(err, "slot_outside_selected_date"))

	err = sess.SelectSlot(time.Time{})
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))
}

func TestSelectSlotRejectsOffGridTimes(t *testing.T) {
	loc := time.UTC
	day := func(hour, minute, second int) time.Time {
		return time.Date(2026, 2, 17, hour, minute, second, 0, loc)
	}

	sess := NewSession("b1", day(8, 0, 0))
	sess.ToggleService(svc("svc1", 4500, 45))

	offGrid := []time.Time{
		day(3, 17, 0),  // madrugada
		day(8, 30, 0),  // antes da abertura
		day(20, 0, 0),  // depois do último slot
		day(14, 10, 0), // minuto fora do passo de 30
		day(14, 0, 30), // segundos não zerados
	}
	for _, slot := range offGrid {
		err := sess.SelectSlot(slot)
		assert.True(t, httperr.IsBusiness(err, "slot_outside_grid"), "slot %s", slot)
		assert.True(t, sess.SelectedSlot.IsZero())
	}

	// sem horário válido o fluxo não passa da seleção de horário
	sess.Step = StepTimeSelection
	assert.False(t, sess.StepValid())
	err := sess.Next()
	assert.True(t, httperr.IsBusiness(err, "step_incomplete"))
	assert.False(t, sess.CanConfirm())

	// extremos da grade continuam reserváveis
	require.NoError(t, sess.SelectSlot(day(9, 0, 0)))
	require.NoError(t, sess.SelectSlot(day(19, 30, 0)))
}

func TestCanConfirmOnlyAtReview(t *testing.T) {
	loc := time.UTC
	sess := NewSession("b1", time.Date(2026, 2, 17, 8, 0, 0, 0, loc))

	sess.ToggleService(svc("svc1", 4500, 45))
	require.NoError(t, sess.SelectSlot(time.Date(2026, 2, 17, 14, 0, 0, 0, loc)))

	assert.False(t, sess.CanConfirm())

	require.NoError(t, sess.Next())
	require.NoError(t, sess.Next())
	require.NoError(t, sess.Next())

	assert.Equal(t, StepPaymentReview, sess.Step)
	assert.True(t, sess.CanConfirm())
}
