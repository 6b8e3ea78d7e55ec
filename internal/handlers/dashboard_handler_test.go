package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barberhub/internal/models"
)

func revenueOn(date time.Time, cents, count int) models.DailyRevenue {
	return models.DailyRevenue{Date: date, RevenueCents: cents, Appointments: count}
}

func TestOverviewWeekWindowExcludesFutureAndOldDays(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 2, 17, 15, 0, 0, 0, loc)
	today := time.Date(2026, 2, 17, 0, 0, 0, 0, loc)

	revenue := []models.DailyRevenue{
		revenueOn(today.AddDate(0, 0, -7), 10000, 2), // fora da janela
		revenueOn(today.AddDate(0, 0, -6), 20000, 3), // primeiro dia da janela
		revenueOn(today.AddDate(0, 0, -1), 30000, 4),
		revenueOn(today, 40000, 5),
		revenueOn(today.AddDate(0, 0, 1), 50000, 6), // dia futuro do dataset
	}

	out := buildOverview(now, revenue, nil, nil)

	assert.Equal(t, 40000, out.TodayRevenueCents)
	assert.Equal(t, 5, out.TodayAppointments)
	assert.Equal(t, 20000+30000+40000, out.WeekRevenueCents)
	assert.Equal(t, 10000+20000+30000+40000+50000, out.MonthRevenueCents)

	assert.InDelta(t, (40000.0-30000.0)/30000.0, out.RevenueChange, 1e-9)
	assert.InDelta(t, (5.0-4.0)/4.0, out.AppointmentsChange, 1e-9)
}

func TestOverviewFindsYesterdayAcrossYearBoundary(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, loc)

	revenue := []models.DailyRevenue{
		revenueOn(time.Date(2025, 12, 31, 0, 0, 0, 0, loc), 20000, 4),
		revenueOn(time.Date(2026, 1, 1, 0, 0, 0, 0, loc), 30000, 6),
	}

	out := buildOverview(now, revenue, nil, nil)

	assert.Equal(t, 30000, out.TodayRevenueCents)
	assert.Equal(t, 20000+30000, out.WeekRevenueCents)
	assert.InDelta(t, 0.5, out.RevenueChange, 1e-9)
	assert.InDelta(t, 0.5, out.AppointmentsChange, 1e-9)
}

func TestOverviewScheduleAndClientRates(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 2, 17, 12, 0, 0, 0, loc)

	blocks := []models.ScheduleBlock{
		{ID: "blk1", Status: models.BlockConfirmed, StartTime: now.Add(-2 * time.Hour)},
		{ID: "blk2", Status: models.BlockWalkIn, StartTime: now.Add(1 * time.Hour)},
		{ID: "blk3", Status: models.BlockConfirmed, StartTime: now.Add(3 * time.Hour)},
		{ID: "blk4", Status: models.BlockBlocked, StartTime: now.Add(30 * time.Minute)}, // intervalo não conta
	}

	clients := []models.Client{
		{ID: "c1", TotalVisits: 10, AverageRating: 5},
		{ID: "c2", TotalVisits: 1, AverageRating: 4},
	}

	out := buildOverview(now, nil, blocks, clients)

	assert.Equal(t, 2, out.UpcomingToday)
	assert.Equal(t, 1, out.CompletedToday)
	assert.InDelta(t, 0.5, out.RepeatClientRate, 1e-9)
	assert.InDelta(t, 4.5, out.AverageRating, 1e-9)
}
