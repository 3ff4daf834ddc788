package httperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/investledger/internal/domain"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{"Invalid amount", domain.ErrInvalidAmount, http.StatusUnprocessableEntity, "invalid amount"},
		{"Unknown plan", domain.ErrUnknownPlan, http.StatusUnprocessableEntity, "unknown plan"},
		{"Missing proof", domain.ErrMissingProof, http.StatusBadRequest, "payment proof is required"},
		{"Wrapped not found", fmt.Errorf("deposit x: %w", domain.ErrNotFound), http.StatusNotFound, "not found"},
		{"Not pending", domain.ErrInvalidStateTransition, http.StatusConflict, "request is no longer pending"},
		{"Forbidden", domain.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"No tokens", domain.ErrInsufficientTokens, http.StatusPaymentRequired, "insufficient tokens"},
		{"No wallet", domain.ErrWalletNotConfigured, http.StatusPreconditionFailed, "wallet not configured"},
		{"Conflict", domain.ErrConflict, http.StatusServiceUnavailable, "try again"},
		{"Store down", domain.ErrStoreUnavailable, http.StatusServiceUnavailable, "try again"},
		{"Deadline", context.DeadlineExceeded, http.StatusServiceUnavailable, "try again"},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := Status(tt.err)
			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedMessage, message)
		})
	}
}

func TestRespond(t *testing.T) {
	w := httptest.NewRecorder()
	Respond(w, domain.ErrConflict)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"message":"try again"}`, w.Body.String())
}
