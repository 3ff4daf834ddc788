package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrumentHandler(t *testing.T) {
	router := chi.NewRouter()
	router.Use(InstrumentHandler)
	router.Get("/api/deposits/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/deposits/{id}", "418"))

	req := httptest.NewRequest(http.MethodGet, "/api/deposits/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/deposits/{id}", "418"))
	assert.Equal(t, before+1, after)
}

func TestHandler(t *testing.T) {
	DepositTransitions.WithLabelValues("approved").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "investledger_deposits_transitions_total")
}
