package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/httperr"
	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/infra/memstore"
	"github.com/BruksfildServices01/barberhub/internal/middleware"
)

type MeHandler struct {
	store *memstore.Store
}

func NewMeHandler(store *memstore.Store) *MeHandler {
	return &MeHandler{store: store}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	user, err := h.store.UserByID(userID)
	if err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	httpresp.OK(c, user)
}
