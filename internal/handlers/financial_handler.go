package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/infra/memstore"
	"github.com/BruksfildServices01/barberhub/internal/models"
	"github.com/BruksfildServices01/barberhub/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type FinancialHandler struct {
	store *memstore.Store
}

func NewFinancialHandler(store *memstore.Store) *FinancialHandler {
	return &FinancialHandler{store: store}
}

// ======================================================
// RESPONSES
// ======================================================

type FinancialsResponse struct {
	Period string `json:"period"`

	Transactions []models.Transaction  `json:"transactions"`
	Payout       models.PayoutSummary  `json:"payout"`
	DailyRevenue []models.DailyRevenue `json:"daily_revenue"`

	PeriodTotalCents int `json:"period_total_cents"`
}

// ======================================================
// GET
// ======================================================

// Get devolve o extrato financeiro do barbeiro filtrado pela janela
// ?period=day|week|month (padrão week). Estornos subtraem do total.
func (h *FinancialHandler) Get(c *gin.Context) {
	period := c.DefaultQuery("period", "week")

	var window time.Duration
	switch period {
	case "day":
		window = 24 * time.Hour
	case "week":
		window = 7 * 24 * time.Hour
	case "month":
		window = 30 * 24 * time.Hour
	default:
		httperr.BadRequest(c, "invalid_period", "Período inválido.")
		return
	}

	now := timezone.Now()
	cutoff := now.Add(-window)

	out := FinancialsResponse{
		Period:       period,
		Transactions: []models.Transaction{},
		Payout:       h.store.Payout(),
		DailyRevenue: h.store.DailyRevenue(),
	}

	for _, tx := range h.store.Transactions() {
		if tx.Date.Before(cutoff) {
			continue
		}

		out.Transactions = append(out.Transactions, tx)

		if tx.Type == models.TransactionRefund {
			out.PeriodTotalCents -= tx.AmountCents
		} else {
			out.PeriodTotalCents += tx.AmountCents
		}
	}

	httpresp.OK(c, out)
}
