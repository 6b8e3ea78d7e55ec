package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apdomain "github.com/BruksfildServices01/barberhub/internal/domain/appointment"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

func TestGenerateTimeSlotsCoversWorkingDay(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 2, 17, 0, 0, 0, 0, loc)

	slots := GenerateTimeSlots(date, loc)

	require.Len(t, slots, 22)
	assert.Equal(t, time.Date(2026, 2, 17, 9, 0, 0, 0, loc), slots[0])
	assert.Equal(t, time.Date(2026, 2, 17, 19, 30, 0, 0, loc), slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, 30*time.Minute, slots[i].Sub(slots[i-1]))
	}
}

func TestMarkAvailabilityBlocksOverlaps(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 2, 17, 0, 0, 0, 0, loc)
	starts := GenerateTimeSlots(date, loc)

	appointments := []models.Appointment{
		{
			Status:  string(apdomain.StatusConfirmed),
			StartAt: time.Date(2026, 2, 17, 14, 0, 0, 0, loc),
			EndAt:   time.Date(2026, 2, 17, 15, 15, 0, 0, loc),
		},
	}

	slots := MarkAvailability(starts, appointments)
	require.Len(t, slots, 22)

	for _, slot := range slots {
		switch slot.StartAt.Hour()*60 + slot.StartAt.Minute() {
		case 14 * 60, 14*60 + 30, 15 * 60:
			// a janela 14:00–15:15 cruza os slots 14:00, 14:30 e 15:00
			assert.False(t, slot.Available, "slot %s", slot.StartAt)
		default:
			assert.True(t, slot.Available, "slot %s", slot.StartAt)
		}
	}
}

func TestMarkAvailabilityIgnoresCanceled(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 2, 17, 0, 0, 0, 0, loc)
	starts := GenerateTimeSlots(date, loc)

	appointments := []models.Appointment{
		{
			Status:  string(apdomain.StatusCanceled),
			StartAt: time.Date(2026, 2, 17, 10, 0, 0, 0, loc),
			EndAt:   time.Date(2026, 2, 17, 11, 0, 0, 0, loc),
		},
	}

	for _, slot := range MarkAvailability(starts, appointments) {
		assert.True(t, slot.Available)
	}
}
