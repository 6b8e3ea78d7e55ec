package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberhub/internal/httpresp"
	"github.com/BruksfildServices01/barberhub/internal/onboarding"
)

// ======================================================
// HANDLER
// ======================================================

type OnboardingHandler struct {
	tracker *onboarding.Tracker
}

func NewOnboardingHandler(tracker *onboarding.Tracker) *OnboardingHandler {
	return &OnboardingHandler{tracker: tracker}
}

// ======================================================
// STATUS
// ======================================================

// GetStatus resolve o estado do onboarding. A primeira chamada lê o flag
// persistido; as seguintes usam o valor em cache.
func (h *OnboardingHandler) GetStatus(c *gin.Context) {
	state := h.tracker.Check(c.Request.Context())

	httpresp.OK(c, gin.H{
		"state":    state,
		"complete": state == onboarding.StateComplete,
	})
}

// Complete marca o onboarding como concluído e persiste o flag.
func (h *OnboardingHandler) Complete(c *gin.Context) {
	h.tracker.Complete(c.Request.Context())

	httpresp.OK(c, gin.H{
		"state":    h.tracker.State(),
		"complete": true,
	})
}
