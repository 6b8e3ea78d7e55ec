package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barberhub/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listUC     *ucAppointment.ListAppointments
	cancelUC   *ucAppointment.CancelAppointment
	checkInUC  *ucAppointment.CheckInAppointment
	completeUC *ucAppointment.CompleteAppointment
}

func NewAppointmentHandler(
	listUC *ucAppointment.ListAppointments,
	cancelUC *ucAppointment.CancelAppointment,
	checkInUC *ucAppointment.CheckInAppointment,
	completeUC *ucAppointment.CompleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		listUC:     listUC,
		cancelUC:   cancelUC,
		checkInUC:  checkInUC,
		completeUC: completeUC,
	}
}

// ======================================================
// LIST
// ======================================================

// List separa os agendamentos do usuário em próximos e histórico.
func (h *AppointmentHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	out, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "list_error", "Erro ao listar agendamentos.")
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	ap, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CHECK-IN
// ======================================================

func (h *AppointmentHandler) CheckIn(c *gin.Context) {
	ap, err := h.checkInUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	ap, err := h.completeUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// HELPERS
// ======================================================

func writeAppointmentError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "not_owner"):
		httperr.BadRequest(c, "not_owner", "Agendamento pertence a outro usuário.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
	default:
		httperr.Internal(c, "appointment_error", "Erro ao atualizar agendamento.")
	}
}
