package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/infra/memstore"
	"github.com/BruksfildServices01/barberhub/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BarbershopHandler struct {
	store *memstore.Store
}

func NewBarbershopHandler(store *memstore.Store) *BarbershopHandler {
	return &BarbershopHandler{store: store}
}

// ======================================================
// RESPONSES
// ======================================================

type ShopProfileResponse struct {
	models.Shop

	Location *models.Location `json:"location,omitempty"`
	Services []models.Service `json:"services"`
}

// ======================================================
// PROFILE
// ======================================================

// GetBySlug resolve a barbearia pelo slug público e anexa endereço e
// catálogo de serviços ativos.
func (h *BarbershopHandler) GetBySlug(c *gin.Context) {
	shop, err := h.store.ShopBySlug(c.Param("slug"))
	if err != nil {
		httperr.NotFound(c, "shop_not_found", "Barbearia não encontrada.")
		return
	}

	out := ShopProfileResponse{
		Shop:     shop,
		Services: []models.Service{},
	}

	if loc, err := h.store.LocationForShop(shop.ID); err == nil {
		out.Location = &loc
	}

	for _, svc := range h.store.Services() {
		if svc.ShopID == shop.ID {
			out.Services = append(out.Services, svc)
		}
	}

	httpresp.OK(c, out)
}

// ======================================================
// SERVICES / PRODUCTS
// ======================================================

func (h *BarbershopHandler) ListServices(c *gin.Context) {
	httpresp.List(c, h.store.Services())
}

func (h *BarbershopHandler) ListProducts(c *gin.Context) {
	httpresp.List(c, h.store.Products())
}
