package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barberhub/internal/domain/booking"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/middleware"
	"github.com/BruksfildServices01/barberhub/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barberhub/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	sessions  *ucBooking.SessionStore
	repo      ucBooking.Repository
	confirmUC *ucBooking.ConfirmBooking
}

func NewBookingHandler(
	sessions *ucBooking.SessionStore,
	repo ucBooking.Repository,
	confirmUC *ucBooking.ConfirmBooking,
) *BookingHandler {
	return &BookingHandler{
		sessions:  sessions,
		repo:      repo,
		confirmUC: confirmUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StartBookingRequest struct {
	BarberID string `json:"barber_id" binding:"required"`
}

type ToggleServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

type SelectSlotRequest struct {
	Slot time.Time `json:"slot" binding:"required"`
}

// ======================================================
// RESPONSES
// ======================================================

// SessionView expõe a sessão com o nome do passo junto do índice.
type SessionView struct {
	domain.Session

	StepName   string `json:"step_name"`
	CanConfirm bool   `json:"can_confirm"`
}

func sessionView(sess domain.Session) SessionView {
	return SessionView{
		Session:    sess,
		StepName:   sess.Step.String(),
		CanConfirm: sess.CanConfirm(),
	}
}

// ======================================================
// FLOW
// ======================================================

func (h *BookingHandler) Start(c *gin.Context) {
	var req StartBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if _, err := h.repo.BarberByID(req.BarberID); err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	sess := h.sessions.Create(req.BarberID, timezone.Now())
	httpresp.Created(c, sessionView(*sess))
}

func (h *BookingHandler) Get(c *gin.Context) {
	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "session_not_found", "Sessão de reserva não encontrada.")
		return
	}

	httpresp.OK(c, sessionView(sess))
}

// ToggleService adiciona ou remove um serviço da seleção. Chamar duas vezes
// com o mesmo serviço devolve a seleção original.
func (h *BookingHandler) ToggleService(c *gin.Context) {
	var req ToggleServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := h.repo.ServiceByID(req.ServiceID)
	if err != nil {
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	sess, err := h.sessions.Update(c.Param("id"), func(s *domain.Session) error {
		s.ToggleService(svc)
		return nil
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, sessionView(sess))
}

func (h *BookingHandler) SelectDate(c *gin.Context) {
	var req SelectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, timezone.Location(timezone.DefaultTimezone))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	sess, err := h.sessions.Update(c.Param("id"), func(s *domain.Session) error {
		s.SelectDate(date)
		return nil
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, sessionView(sess))
}

func (h *BookingHandler) SelectSlot(c *gin.Context) {
	var req SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	sess, err := h.sessions.Update(c.Param("id"), func(s *domain.Session) error {
		return s.SelectSlot(req.Slot)
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, sessionView(sess))
}

// Next avança um passo do fluxo. O passo atual precisa estar válido.
func (h *BookingHandler) Next(c *gin.Context) {
	sess, err := h.sessions.Update(c.Param("id"), func(s *domain.Session) error {
		return s.Next()
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, sessionView(sess))
}

// Back recua um passo. No primeiro passo a sessão é descartada e o fluxo
// termina.
func (h *BookingHandler) Back(c *gin.Context) {
	id := c.Param("id")

	exited := false
	sess, err := h.sessions.Update(id, func(s *domain.Session) error {
		exited = s.Back()
		return nil
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	if exited {
		h.sessions.Discard(id)
		httpresp.OK(c, gin.H{"exited": true})
		return
	}

	httpresp.OK(c, sessionView(sess))
}

// ======================================================
// CONFIRM
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	sess, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "session_not_found", "Sessão de reserva não encontrada.")
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), userID, sess)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	// sessão termina na confirmação
	h.sessions.Discard(sess.ID)

	httpresp.Created(c, ap)
}

// ======================================================
// HELPERS
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "session_not_found"):
		httperr.NotFound(c, "session_not_found", "Sessão de reserva não encontrada.")
	case httperr.IsBusiness(err, "step_incomplete"):
		httperr.BadRequest(c, "step_incomplete", "Complete o passo atual antes de avançar.")
	case httperr.IsBusiness(err, "already_at_review"):
		httperr.BadRequest(c, "already_at_review", "A sessão já está na revisão de pagamento.")
	case httperr.IsBusiness(err, "invalid_slot"):
		httperr.BadRequest(c, "invalid_slot", "Horário inválido.")
	case httperr.IsBusiness(err, "slot_outside_selected_date"):
		httperr.BadRequest(c, "slot_outside_selected_date", "O horário precisa cair no dia selecionado.")
	case httperr.IsBusiness(err, "slot_outside_grid"):
		httperr.BadRequest(c, "slot_outside_grid", "O horário precisa estar na grade de atendimento.")
	case httperr.IsBusiness(err, "booking_not_ready"):
		httperr.BadRequest(c, "booking_not_ready", "A reserva ainda não está pronta para confirmar.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "O horário escolhido já foi ocupado.")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
	default:
		httperr.Internal(c, "booking_error", "Erro no fluxo de reserva.")
	}
}
