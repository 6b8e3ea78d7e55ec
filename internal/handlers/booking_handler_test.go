package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barberhub/internal/audit"
	"github.com/BruksfildServices01/barberhub/internal/infra/memstore"
	"github.com/BruksfildServices01/barberhub/internal/logging"
	"github.com/BruksfildServices01/barberhub/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barberhub/internal/usecase/booking"
)

func newBookingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memstore.New()
	sessions := ucBooking.NewSessionStore()
	dispatcher := audit.NewDispatcher(audit.New(logging.Default()))
	confirmUC := ucBooking.NewConfirmBooking(store, dispatcher)

	h := NewBookingHandler(sessions, store, confirmUC)

	r := gin.New()
	r.Use(middleware.WithUser(memstore.CurrentUserID))

	r.POST("/bookings", h.Start)
	r.GET("/bookings/:id", h.Get)
	r.POST("/bookings/:id/services/toggle", h.ToggleService)
	r.PUT("/bookings/:id/date", h.SelectDate)
	r.PUT("/bookings/:id/slot", h.SelectSlot)
	r.POST("/bookings/:id/next", h.Next)
	r.POST("/bookings/:id/back", h.Back)
	r.POST("/bookings/:id/confirm", h.Confirm)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestBookingWizardFullFlow(t *testing.T) {
	r := newBookingRouter(t)

	// iniciar o fluxo
	w, sess := doJSON(t, r, http.MethodPost, "/bookings", gin.H{"barber_id": "b1"})
	require.Equal(t, http.StatusCreated, w.Code)

	id := sess["id"].(string)
	assert.Equal(t, "service_selection", sess["step_name"])

	// avançar sem serviço é rejeitado
	w, out := doJSON(t, r, http.MethodPost, "/bookings/"+id+"/next", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "step_incomplete", out["error_code"])

	// selecionar serviços
	w, sess = doJSON(t, r, http.MethodPost, "/bookings/"+id+"/services/toggle", gin.H{"service_id": "svc1"})
	require.Equal(t, http.StatusOK, w.Code)

	w, sess = doJSON(t, r, http.MethodPost, "/bookings/"+id+"/services/toggle", gin.H{"service_id": "svc2"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 7500, sess["total_cents"])
	assert.EqualValues(t, 1500, sess["deposit_cents"])

	// serviço → data
	w, sess = doJSON(t, r, http.MethodPost, "/bookings/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "date_selection", sess["step_name"])

	date := time.Now().AddDate(0, 0, 7)
	dateStr := date.Format("2006-01-02")
	w, _ = doJSON(t, r, http.MethodPut, "/bookings/"+id+"/date", gin.H{"date": dateStr})
	require.Equal(t, http.StatusOK, w.Code)

	// data → horário
	w, sess = doJSON(t, r, http.MethodPost, "/bookings/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "time_selection", sess["step_name"])

	slot := fmt.Sprintf("%sT14:00:00Z", dateStr)
	w, out = doJSON(t, r, http.MethodPut, "/bookings/"+id+"/slot", gin.H{"slot": slot})
	require.Equal(t, http.StatusOK, w.Code, "%v", out)

	// horário → revisão
	w, sess = doJSON(t, r, http.MethodPost, "/bookings/"+id+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "payment_review", sess["step_name"])
	assert.Equal(t, true, sess["can_confirm"])

	// confirmar emite o agendamento e descarta a sessão
	w, ap := doJSON(t, r, http.MethodPost, "/bookings/"+id+"/confirm", nil)
	require.Equal(t, http.StatusCreated, w.Code, "%v", ap)
	assert.Equal(t, "confirmed", ap["status"])
	assert.EqualValues(t, 7500, ap["quoted_total_cents"])

	w, _ = doJSON(t, r, http.MethodGet, "/bookings/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingBackAtFirstStepDiscardsSession(t *testing.T) {
	r := newBookingRouter(t)

	w, sess := doJSON(t, r, http.MethodPost, "/bookings", gin.H{"barber_id": "b1"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := sess["id"].(string)

	w, out := doJSON(t, r, http.MethodPost, "/bookings/"+id+"/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["exited"])

	w, _ = doJSON(t, r, http.MethodGet, "/bookings/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingStartUnknownBarber(t *testing.T) {
	r := newBookingRouter(t)

	w, out := doJSON(t, r, http.MethodPost, "/bookings", gin.H{"barber_id": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "barber_not_found", out["error_code"])
}
