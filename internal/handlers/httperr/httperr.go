package httperr

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/pkg/utils"
)

type mapping struct {
	err     error
	code    int
	message string
}

var mappings = []mapping{
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity, "invalid amount"},
	{domain.ErrUnknownPlan, http.StatusUnprocessableEntity, "unknown plan"},
	{domain.ErrMissingProof, http.StatusBadRequest, "payment proof is required"},
	{domain.ErrInvalidReferralCode, http.StatusUnprocessableEntity, "invalid referral code"},
	{domain.ErrNotFound, http.StatusNotFound, "not found"},
	{domain.ErrAlreadyExists, http.StatusConflict, "already exists"},
	{domain.ErrInvalidStateTransition, http.StatusConflict, "request is no longer pending"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrInsufficientTokens, http.StatusPaymentRequired, "insufficient tokens"},
	{domain.ErrWalletNotConfigured, http.StatusPreconditionFailed, "wallet not configured"},
	{domain.ErrConflict, http.StatusServiceUnavailable, "try again"},
	{domain.ErrStoreUnavailable, http.StatusServiceUnavailable, "try again"},
	{context.DeadlineExceeded, http.StatusServiceUnavailable, "try again"},
}

// Status maps a workflow error onto an HTTP status and a client-facing message.
func Status(err error) (int, string) {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return m.code, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

func Respond(w http.ResponseWriter, err error) {
	code, message := Status(err)
	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Int("status", code), zap.Error(err))
	}
	if code == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", "1")
	}
	utils.RespondWithError(w, code, message)
}
