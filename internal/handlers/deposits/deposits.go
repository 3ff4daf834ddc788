//go:generate mockgen -source=deposits.go -destination=mock_deposits.go -package=deposits
package deposits

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httperr"
	"github.com/GlebRadaev/investledger/internal/proofstore"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
)

const maxProofSize = 10 << 20

type Service interface {
	Submit(ctx context.Context, userID uuid.UUID, category domain.PlanCategory, amount decimal.Decimal, proofRef string) (*domain.Deposit, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error)
	ListPlans(ctx context.Context, userID uuid.UUID) ([]domain.Plan, error)
}

type DepositHandler struct {
	depositService Service
	proofStore     proofstore.Store
}

func New(depositService Service, proofStore proofstore.Store) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
		proofStore:     proofStore,
	}
}

// SubmitDeposit godoc
//
//	@Summary		Submit deposit
//	@Description	Upload the payment proof and open a pending deposit for the chosen plan.
//	@Tags			Депозиты
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			plan	formData	string					true	"Plan category"	Enums(crypto, stock, nft, mixed, physical)
//	@Param			amount	formData	string					true	"Deposit amount"
//	@Param			proof	formData	file					true	"Payment proof"
//	@Success		201		{object}	dto.DepositResponseDTO	"Deposit submitted"
//	@Failure		400		{object}	utils.Response			"Malformed form or missing proof"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Profile not found"
//	@Failure		422		{object}	utils.Response			"Unknown plan or amount out of range"
//	@Failure		502		{object}	utils.Response			"Proof storage failed"
//	@Failure		503		{object}	utils.Response			"Try again"
//	@Router			/api/deposits [post]
func (h *DepositHandler) SubmitDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	r.Body = http.MaxBytesReader(w, r.Body, maxProofSize+1<<20)
	if err := r.ParseMultipartForm(maxProofSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	category := domain.PlanCategory(strings.ToLower(strings.TrimSpace(r.FormValue("plan"))))
	amount, err := decimal.NewFromString(strings.TrimSpace(r.FormValue("amount")))
	if err != nil {
		httperr.Respond(w, domain.ErrInvalidAmount)
		return
	}
	// reject before uploading so invalid requests leave no orphaned files
	minimum, ok := domain.MinDeposit(category)
	if !ok {
		httperr.Respond(w, domain.ErrUnknownPlan)
		return
	}
	if amount.LessThan(minimum) || !domain.AmountFits(amount) {
		httperr.Respond(w, domain.ErrInvalidAmount)
		return
	}

	file, header, err := r.FormFile("proof")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			httperr.Respond(w, domain.ErrMissingProof)
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "invalid proof file")
		return
	}
	defer file.Close()
	if header.Size == 0 {
		httperr.Respond(w, domain.ErrMissingProof)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ref, err := h.proofStore.Put(r.Context(), userID, header.Filename, contentType, file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, "failed to store payment proof")
		return
	}

	deposit, err := h.depositService.Submit(r.Context(), userID, category, amount, ref)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewDepositResponse(deposit))
}

// GetDeposits godoc
//
//	@Summary		List my deposits
//	@Tags			Депозиты
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO	"Deposits, newest first"
//	@Success		204	{object}	utils.Response			"No deposits"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		503	{object}	utils.Response			"Try again"
//	@Router			/api/deposits [get]
func (h *DepositHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	deposits, err := h.depositService.ListMine(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(deposits) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositList(deposits))
}

// GetPlans godoc
//
//	@Summary		List my plans
//	@Description	Plans materialized by approved deposits.
//	@Tags			Депозиты
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PlanResponseDTO	"Plans"
//	@Success		204	{object}	utils.Response		"No plans"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		503	{object}	utils.Response		"Try again"
//	@Router			/api/plans [get]
func (h *DepositHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	plans, err := h.depositService.ListPlans(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(plans) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPlanList(plans))
}
