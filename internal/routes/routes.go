package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/config"
	domainQueue "github.com/BruksfildServices01/barberhub/internal/domain/queue"
	"github.com/BruksfildServices01/barberhub/internal/handlers"
	"github.com/BruksfildServices01/barberhub/internal/infra/memstore"
	"github.com/BruksfildServices01/barberhub/internal/logging"
	"github.com/BruksfildServices01/barberhub/internal/metrics"
	"github.com/BruksfildServices01/barberhub/internal/middleware"
	"github.com/BruksfildServices01/barberhub/internal/onboarding"
	ucAppointment "github.com/BruksfildServices01/barberhub/internal/usecase/appointment"
	ucBooking "github.com/BruksfildServices01/barberhub/internal/usecase/booking"
	ucDiscovery "github.com/BruksfildServices01/barberhub/internal/usecase/discovery"
)

func RegisterRoutes(
	r *gin.Engine,
	store *memstore.Store,
	tracker *onboarding.Tracker,
	log *logging.Logger,
	cfg *config.Config,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	m := metrics.New("barberhub")

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware(m))
	r.Use(middleware.WithUser(memstore.CurrentUserID))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(log)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	sessions := ucBooking.NewSessionStore()
	queue := domainQueue.New(time.Duration(cfg.QueueDisplayDelayMS) * time.Millisecond)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	searchBarbersUC := ucDiscovery.NewSearchBarbers(store)

	availabilityUC := ucBooking.NewGetAvailability(store)
	confirmBookingUC := ucBooking.NewConfirmBooking(store, auditDispatcher)

	listAppointmentsUC := ucAppointment.NewListAppointments(store)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(store, auditDispatcher)
	checkInAppointmentUC := ucAppointment.NewCheckInAppointment(store, auditDispatcher)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(store, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	meHandler := handlers.NewMeHandler(store)
	discoveryHandler := handlers.NewDiscoveryHandler(searchBarbersUC)
	barberHandler := handlers.NewBarberHandler(store, availabilityUC)
	barbershopHandler := handlers.NewBarbershopHandler(store)
	bookingHandler := handlers.NewBookingHandler(sessions, store, confirmBookingUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		cancelAppointmentUC,
		checkInAppointmentUC,
		completeAppointmentUC,
	)

	queueHandler := handlers.NewQueueHandler(queue)
	dashboardHandler := handlers.NewDashboardHandler(store)
	clientHandler := handlers.NewClientHandler(store)
	financialHandler := handlers.NewFinancialHandler(store)
	onboardingHandler := handlers.NewOnboardingHandler(tracker)

	// ======================================================
	// 📈 OBSERVABILIDADE
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/me", meHandler.GetMe)

		// ------------------------------
		// ONBOARDING
		// ------------------------------
		api.GET("/onboarding", onboardingHandler.GetStatus)
		api.POST("/onboarding/complete", onboardingHandler.Complete)

		// ------------------------------
		// DESCOBERTA
		// ------------------------------
		api.GET("/barbers", discoveryHandler.Search)
		api.GET("/barbers/:id", barberHandler.GetProfile)
		api.GET("/barbers/:id/reviews", barberHandler.ListReviews)
		api.GET("/barbers/:id/availability", barberHandler.GetAvailability)

		api.GET("/shops/:slug", barbershopHandler.GetBySlug)
		api.GET("/services", barbershopHandler.ListServices)

		// ------------------------------
		// FLUXO DE RESERVA
		// ------------------------------
		api.POST("/bookings", bookingHandler.Start)
		api.GET("/bookings/:id", bookingHandler.Get)
		api.POST("/bookings/:id/services/toggle", bookingHandler.ToggleService)
		api.PUT("/bookings/:id/date", bookingHandler.SelectDate)
		api.PUT("/bookings/:id/slot", bookingHandler.SelectSlot)
		api.POST("/bookings/:id/next", bookingHandler.Next)
		api.POST("/bookings/:id/back", bookingHandler.Back)
		api.POST("/bookings/:id/confirm", bookingHandler.Confirm)

		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		api.GET("/me/appointments", appointmentHandler.List)
		api.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
		api.PATCH("/me/appointments/:id/checkin", appointmentHandler.CheckIn)
		api.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

		// ------------------------------
		// PAINEL DO BARBEIRO
		// ------------------------------
		api.GET("/me/dashboard", dashboardHandler.GetOverview)
		api.GET("/me/schedule", dashboardHandler.GetSchedule)
		api.GET("/me/clients", clientHandler.List)
		api.GET("/me/products", barbershopHandler.ListProducts)
		api.GET("/me/financials", financialHandler.Get)

		// ------------------------------
		// FILA WALK-IN
		// ------------------------------
		api.GET("/me/queue", queueHandler.Get)
		api.POST("/me/queue", queueHandler.Add)
		api.PATCH("/me/queue/:id/start", queueHandler.StartService)
		api.PATCH("/me/queue/:id/complete", queueHandler.CompleteService)
		api.PATCH("/me/queue/:id/no-show", queueHandler.MarkNoShow)
	}
}
