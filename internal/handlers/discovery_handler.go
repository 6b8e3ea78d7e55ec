package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barberhub/internal/domain/discovery"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	ucDiscovery "github.com/BruksfildServices01/barberhub/internal/usecase/discovery"
)

// ======================================================
// HANDLER
// ======================================================

type DiscoveryHandler struct {
	searchUC *ucDiscovery.SearchBarbers
}

func NewDiscoveryHandler(searchUC *ucDiscovery.SearchBarbers) *DiscoveryHandler {
	return &DiscoveryHandler{searchUC: searchUC}
}

// ======================================================
// SEARCH
// ======================================================

// Search aplica o pipeline de descoberta: filtro por texto e especialidades,
// depois ordenação. Sem parâmetros devolve todos os barbeiros ordenados por
// distância.
func (h *DiscoveryHandler) Search(c *gin.Context) {
	query := c.Query("query")

	var specialties []string
	if raw := c.Query("specialties"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				specialties = append(specialties, s)
			}
		}
	}

	sortBy := domain.ParseSortKey(c.Query("sort"))

	barbers := h.searchUC.Execute(c.Request.Context(), ucDiscovery.SearchInput{
		Query:       query,
		Specialties: specialties,
		SortBy:      sortBy,
	})

	httpresp.List(c, barbers)
}
