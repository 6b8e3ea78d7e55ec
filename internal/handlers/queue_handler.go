package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barberhub/internal/domain/queue"
	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type QueueHandler struct {
	queue *domain.Queue
}

func NewQueueHandler(queue *domain.Queue) *QueueHandler {
	return &QueueHandler{queue: queue}
}

// ======================================================
// REQUESTS
// ======================================================

type EnqueueRequest struct {
	Name              string `json:"name" binding:"required"`
	Phone             string `json:"phone"`
	Service           string `json:"service" binding:"required"`
	EstimatedDuration int    `json:"estimated_duration"`
	Notes             string `json:"notes"`
}

// ======================================================
// SNAPSHOT
// ======================================================

// Get devolve a visão completa da fila: espera com posição e minutos,
// atendimento em curso, concluídos recentes e as estimativas agregadas.
func (h *QueueHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.queue.Snapshot())
}

// ======================================================
// OPERATIONS
// ======================================================

func (h *QueueHandler) Add(c *gin.Context) {
	var req EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	customer, err := h.queue.Enqueue(domain.EnqueueInput{
		Name:              req.Name,
		Phone:             req.Phone,
		Service:           req.Service,
		EstimatedDuration: req.EstimatedDuration,
		Notes:             req.Notes,
	})
	if err != nil {
		writeQueueError(c, err)
		return
	}

	httpresp.Created(c, customer)
}

func (h *QueueHandler) StartService(c *gin.Context) {
	if err := h.queue.StartService(c.Param("id")); err != nil {
		writeQueueError(c, err)
		return
	}

	httpresp.OK(c, h.queue.Snapshot())
}

func (h *QueueHandler) CompleteService(c *gin.Context) {
	if err := h.queue.CompleteService(c.Param("id")); err != nil {
		writeQueueError(c, err)
		return
	}

	httpresp.OK(c, h.queue.Snapshot())
}

// MarkNoShow remove o cliente da fila na hora, sem registro terminal.
func (h *QueueHandler) MarkNoShow(c *gin.Context) {
	if err := h.queue.MarkNoShow(c.Param("id")); err != nil {
		writeQueueError(c, err)
		return
	}

	httpresp.OK(c, h.queue.Snapshot())
}

// ======================================================
// HELPERS
// ======================================================

func writeQueueError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "customer_not_found"):
		httperr.NotFound(c, "customer_not_found", "Cliente não está na fila.")
	case httperr.IsBusiness(err, "customer_not_waiting"):
		httperr.BadRequest(c, "customer_not_waiting", "Cliente não está aguardando.")
	case httperr.IsBusiness(err, "customer_not_in_service"):
		httperr.BadRequest(c, "customer_not_in_service", "Cliente não está em atendimento.")
	case httperr.IsBusiness(err, "service_already_in_progress"):
		httperr.Conflict(c, "service_already_in_progress", "Já existe um atendimento em curso.")
	case httperr.IsBusiness(err, "name_required"):
		httperr.BadRequest(c, "name_required", "Nome é obrigatório.")
	case httperr.IsBusiness(err, "service_required"):
		httperr.BadRequest(c, "service_required", "Serviço é obrigatório.")
	case httperr.IsBusiness(err, "invalid_phone"):
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
	default:
		httperr.Internal(c, "queue_error", "Erro na fila de atendimento.")
	}
}
