package booking

import (
	"time"

	domain "github.com/BruksfildServices01/barberhub/internal/domain/appointment"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

// Expediente da grade de horários: 09:00 até 19:30, de 30 em 30 minutos.
// O limite superior é exclusivo (hour < 20), então o último slot é 19:30.
const (
	dayStartHour    = 9
	dayEndHour      = 20
	slotStepMinutes = 30
)

type Slot struct {
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Available bool      `json:"available"`
}

// onSlotGrid diz se o horário cai exatamente sobre a grade do expediente.
// Qualquer horário fora dela (madrugada, minuto quebrado, segundos) não é
// reservável.
func onSlotGrid(t time.Time) bool {
	if t.Hour() < dayStartHour || t.Hour() >= dayEndHour {
		return false
	}
	return t.Minute()%slotStepMinutes == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// GenerateTimeSlots produz os horários absolutos de um dia combinando a data
// escolhida com a grade fixa do expediente. Sempre 22 slots.
func GenerateTimeSlots(date time.Time, loc *time.Location) []time.Time {
	var slots []time.Time

	for hour := dayStartHour; hour < dayEndHour; hour++ {
		for minute := 0; minute < 60; minute += slotStepMinutes {
			slots = append(slots, time.Date(
				date.Year(), date.Month(), date.Day(),
				hour, minute, 0, 0,
				loc,
			))
		}
	}

	return slots
}

// MarkAvailability resolve a disponibilidade de cada slot contra os
// agendamentos existentes do barbeiro. Um slot fica indisponível quando a sua
// janela de 30 minutos cruza um agendamento que não foi cancelado.
func MarkAvailability(starts []time.Time, appointments []models.Appointment) []Slot {
	slots := make([]Slot, 0, len(starts))

	for _, start := range starts {
		end := start.Add(slotStepMinutes * time.Minute)

		available := true
		for _, ap := range appointments {
			if domain.Status(ap.Status) == domain.StatusCanceled {
				continue
			}
			if start.Before(ap.EndAt) && end.After(ap.StartAt) {
				available = false
				break
			}
		}

		slots = append(slots, Slot{
			StartAt:   start,
			EndAt:     end,
			Available: available,
		})
	}

	return slots
}
