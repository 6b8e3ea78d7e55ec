package models

type DashboardAnalytics struct {
	TodayRevenueCents int `json:"today_revenue_cents"`
	WeekRevenueCents  int `json:"week_revenue_cents"`
	MonthRevenueCents int `json:"month_revenue_cents"`

	TodayAppointments int `json:"today_appointments"`
	UpcomingToday     int `json:"upcoming_today"`
	CompletedToday    int `json:"completed_today"`

	AverageRating    float64 `json:"average_rating"`
	RepeatClientRate float64 `json:"repeat_client_rate"`

	RevenueChange      float64 `json:"revenue_change"`
	AppointmentsChange float64 `json:"appointments_change"`
}
