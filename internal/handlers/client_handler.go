package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/infra/memstore"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ClientHandler struct {
	store *memstore.Store
}

func NewClientHandler(store *memstore.Store) *ClientHandler {
	return &ClientHandler{store: store}
}

// ======================================================
// RESPONSES
// ======================================================

type ClientListResponse struct {
	Data  []models.Client `json:"data"`
	Total int             `json:"total"`

	TotalLifetimeValueCents int `json:"total_lifetime_value_cents"`
}

// ======================================================
// LIST
// ======================================================

// List devolve a carteira de clientes do barbeiro. ?query= filtra por nome
// ou telefone, ?tag= exige a tag exata. Os filtros se combinam.
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	tag := strings.TrimSpace(c.Query("tag"))

	out := ClientListResponse{Data: []models.Client{}}

	for _, cl := range h.store.Clients() {
		if query != "" &&
			!strings.Contains(strings.ToLower(cl.Name), query) &&
			!strings.Contains(cl.Phone, query) {
			continue
		}
		if tag != "" && !hasTag(cl, tag) {
			continue
		}

		out.Data = append(out.Data, cl)
		out.TotalLifetimeValueCents += cl.LifetimeValueCents
	}

	out.Total = len(out.Data)
	httpresp.OK(c, out)
}

func hasTag(cl models.Client, tag string) bool {
	for _, t := range cl.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
