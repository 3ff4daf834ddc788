//go:generate mockgen -source=withdrawals.go -destination=mock_withdrawals.go -package=withdrawals
package withdrawals

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httperr"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
)

type Service interface {
	Submit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Withdrawal, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// SubmitWithdrawal godoc
//
//	@Summary		Request withdrawal
//	@Description	Open a pending withdrawal. Requires a configured wallet and at least one referral token.
//	@Tags			Выводы
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request payload"
//	@Success		201		{object}	dto.WithdrawalResponseDTO	"Withdrawal requested"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient tokens"
//	@Failure		412		{object}	utils.Response				"Wallet not configured"
//	@Failure		422		{object}	utils.Response				"Invalid amount"
//	@Failure		503		{object}	utils.Response				"Try again"
//	@Router			/api/withdrawals [post]
func (h *WithdrawalHandler) SubmitWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	withdrawal, err := h.withdrawalService.Submit(r.Context(), userID, req.Amount)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewWithdrawalResponse(withdrawal))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Tags			Выводы
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response				"Withdrawals not found"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		503	{object}	utils.Response				"Try again"
//	@Router			/api/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	withdrawals, err := h.withdrawalService.ListMine(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(withdrawals) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalList(withdrawals))
}
