package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/infra/memstore"
	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	store *memstore.Store
}

func NewDashboardHandler(store *memstore.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// ======================================================
// OVERVIEW
// ======================================================

// GetOverview agrega os números do painel do barbeiro: receita de hoje, da
// semana e do mês, agendamentos do dia e taxas derivadas da carteira de
// clientes. Tudo calculado na hora a partir do dataset.
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	out := buildOverview(
		timezone.Now(),
		h.store.DailyRevenue(),
		h.store.ScheduleBlocks(),
		h.store.Clients(),
	)

	httpresp.OK(c, out)
}

// buildOverview compara dias por data truncada, nunca por YearDay, para a
// virada de ano não quebrar o "ontem". A janela da semana fecha nos dois
// lados: dias futuros do dataset ficam de fora.
func buildOverview(
	now time.Time,
	revenue []models.DailyRevenue,
	blocks []models.ScheduleBlock,
	clients []models.Client,
) models.DashboardAnalytics {

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)
	weekStart := today.AddDate(0, 0, -6)

	out := models.DashboardAnalytics{}

	var todayRevenue, yesterdayRevenue int
	var todayCount, yesterdayCount int
	for _, day := range revenue {
		local := day.Date.In(now.Location())
		localDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, now.Location())

		out.MonthRevenueCents += day.RevenueCents

		if !localDay.Before(weekStart) && !localDay.After(today) {
			out.WeekRevenueCents += day.RevenueCents
		}

		switch {
		case localDay.Equal(today):
			todayRevenue = day.RevenueCents
			todayCount = day.Appointments
		case localDay.Equal(yesterday):
			yesterdayRevenue = day.RevenueCents
			yesterdayCount = day.Appointments
		}
	}
	out.TodayRevenueCents = todayRevenue
	out.TodayAppointments = todayCount

	if yesterdayRevenue > 0 {
		out.RevenueChange = float64(todayRevenue-yesterdayRevenue) / float64(yesterdayRevenue)
	}
	if yesterdayCount > 0 {
		out.AppointmentsChange = float64(todayCount-yesterdayCount) / float64(yesterdayCount)
	}

	// agenda do dia
	for _, block := range blocks {
		switch block.Status {
		case models.BlockConfirmed, models.BlockCheckedIn, models.BlockWalkIn:
			if block.StartTime.After(now) {
				out.UpcomingToday++
			} else {
				out.CompletedToday++
			}
		}
	}

	// carteira de clientes
	if len(clients) > 0 {
		repeat := 0
		var ratingSum float64
		for _, cl := range clients {
			if cl.TotalVisits > 1 {
				repeat++
			}
			ratingSum += cl.AverageRating
		}
		out.RepeatClientRate = float64(repeat) / float64(len(clients))
		out.AverageRating = ratingSum / float64(len(clients))
	}

	return out
}

// ======================================================
// SCHEDULE
// ======================================================

func (h *DashboardHandler) GetSchedule(c *gin.Context) {
	httpresp.List(c, h.store.ScheduleBlocks())
}
