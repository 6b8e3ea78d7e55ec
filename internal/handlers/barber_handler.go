package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/infra/memstore"
	"github.com/BruksfildServices01/barberhub/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barberhub/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	store          *memstore.Store
	availabilityUC *ucBooking.GetAvailability
}

func NewBarberHandler(
	store *memstore.Store,
	availabilityUC *ucBooking.GetAvailability,
) *BarberHandler {
	return &BarberHandler{
		store:          store,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// PROFILE
// ======================================================

func (h *BarberHandler) GetProfile(c *gin.Context) {
	barber, err := h.store.BarberByID(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) ListReviews(c *gin.Context) {
	if _, err := h.store.BarberByID(c.Param("id")); err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	httpresp.List(c, h.store.ReviewsForBarber(c.Param("id")))
}

// ======================================================
// AVAILABILITY
// ======================================================

// GetAvailability devolve a grade de horários do dia para o barbeiro.
// ?date=YYYY-MM-DD; sem parâmetro assume hoje no fuso da barbearia.
func (h *BarberHandler) GetAvailability(c *gin.Context) {
	date := timezone.Now()

	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, date.Location())
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		date = parsed
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		BarberID: c.Param("id"),
		Date:     date,
	})
	if err != nil {
		if httperr.IsBusiness(err, "barber_not_found") {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "availability_error", "Erro ao montar a grade de horários.")
		return
	}

	httpresp.List(c, slots)
}
