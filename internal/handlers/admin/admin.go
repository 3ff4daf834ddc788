//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin
package admin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httperr"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
)

type DepositService interface {
	List(ctx context.Context, actor uuid.UUID, status domain.DepositStatus) ([]domain.Deposit, error)
	Approve(ctx context.Context, depositID, actor uuid.UUID) (*domain.Deposit, *domain.Plan, error)
	Reject(ctx context.Context, depositID, actor uuid.UUID) (*domain.Deposit, error)
}

type WithdrawalService interface {
	List(ctx context.Context, actor uuid.UUID, status domain.WithdrawalStatus) ([]domain.Withdrawal, error)
	Complete(ctx context.Context, withdrawalID, actor uuid.UUID) (*domain.Withdrawal, error)
	Reject(ctx context.Context, withdrawalID, actor uuid.UUID) (*domain.Withdrawal, error)
}

type ProfileService interface {
	List(ctx context.Context, actor uuid.UUID) ([]domain.Profile, error)
	SetAdmin(ctx context.Context, actor, target uuid.UUID, isAdmin bool) error
}

type StatsService interface {
	Dashboard(ctx context.Context, actor uuid.UUID) (*domain.Dashboard, error)
}

type AdminHandler struct {
	depositService    DepositService
	withdrawalService WithdrawalService
	profileService    ProfileService
	statsService      StatsService
}

func New(deposits DepositService, withdrawals WithdrawalService, profiles ProfileService, stats StatsService) *AdminHandler {
	return &AdminHandler{
		depositService:    deposits,
		withdrawalService: withdrawals,
		profileService:    profiles,
		statsService:      stats,
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// GetStats godoc
//
//	@Summary	Admin dashboard
//	@Tags		Администрирование
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.DashboardResponseDTO	"Dashboard figures"
//	@Failure	401	{object}	utils.Response				"User not authorized"
//	@Failure	403	{object}	utils.Response				"Caller is not an admin"
//	@Failure	503	{object}	utils.Response				"Try again"
//	@Router		/api/admin/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	dashboard, err := h.statsService.Dashboard(r.Context(), actor)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDashboardResponse(dashboard))
}

// GetDeposits godoc
//
//	@Summary	List deposits
//	@Tags		Администрирование
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string					false	"Filter by status"	Enums(pending, approved, rejected)
//	@Success	200		{array}		dto.DepositResponseDTO	"Deposits, newest first"
//	@Success	204		{object}	utils.Response			"No deposits"
//	@Failure	400		{object}	utils.Response			"Unknown status"
//	@Failure	403		{object}	utils.Response			"Caller is not an admin"
//	@Failure	503		{object}	utils.Response			"Try again"
//	@Router		/api/admin/deposits [get]
func (h *AdminHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	status := domain.DepositStatus(r.URL.Query().Get("status"))
	switch status {
	case "", domain.DepositPending, domain.DepositApproved, domain.DepositRejected:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "unknown status")
		return
	}

	deposits, err := h.depositService.List(r.Context(), actor, status)
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

// ApproveDeposit godoc
//
//	@Summary		Approve deposit
//	@Description	Approve a pending deposit, start its plan and activate the depositor's referral.
//	@Tags			Администрирование
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string							true	"Deposit id"
//	@Success		200	{object}	dto.ApproveDepositResponseDTO	"Approved deposit and its plan"
//	@Failure		400	{object}	utils.Response					"Invalid id"
//	@Failure		403	{object}	utils.Response					"Caller is not an admin"
//	@Failure		404	{object}	utils.Response					"Deposit not found"
//	@Failure		409	{object}	utils.Response					"Deposit is no longer pending"
//	@Failure		503	{object}	utils.Response					"Try again"
//	@Router			/api/admin/deposits/{id}/approve [post]
func (h *AdminHandler) ApproveDeposit(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(auth.UserIDKey).(uuid.UUID)
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deposit, plan, err := h.depositService.Approve(r.Context(), id, actor)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ApproveDepositResponseDTO{
		Deposit: dto.NewDepositResponse(deposit),
		Plan:    dto.NewPlanResponse(plan),
	})
}

// RejectDeposit godoc
//
//	@Summary	Reject deposit
//	@Tags		Администрирование
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string					true	"Deposit id"
//	@Success	200	{object}	dto.DepositResponseDTO	"Rejected deposit"
//	@Failure	400	{object}	utils.Response			"Invalid id"
//	@Failure	403	{object}	utils.Response			"Caller is not an admin"
//	@Failure	404	{object}	utils.Response			"Deposit not found"
//	@Failure	409	{object}	utils.Response			"Deposit is no longer pending"
//	@Failure	503	{object}	utils.Response			"Try again"
//	@Router		/api/admin/deposits/{id}/reject [post]
func (h *AdminHandler) RejectDeposit(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(auth.UserIDKey).(uuid.UUID)
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	deposit, err := h.depositService.Reject(r.Context(), id, actor)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDepositResponse(deposit))
}

// GetWithdrawals godoc
//
//	@Summary	List withdrawals
//	@Tags		Администрирование
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string						false	"Filter by status"	Enums(pending, completed, rejected)
//	@Success	200		{array}		dto.WithdrawalResponseDTO	"Withdrawals, newest first"
//	@Success	204		{object}	utils.Response				"No withdrawals"
//	@Failure	400		{object}	utils.Response				"Unknown status"
//	@Failure	403		{object}	utils.Response				"Caller is not an admin"
//	@Failure	503		{object}	utils.Response				"Try again"
//	@Router		/api/admin/withdrawals [get]
func (h *AdminHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	status := domain.WithdrawalStatus(r.URL.Query().Get("status"))
	switch status {
	case "", domain.WithdrawalPending, domain.WithdrawalCompleted, domain.WithdrawalRejected:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "unknown status")
		return
	}

	withdrawals, err := h.withdrawalService.List(r.Context(), actor, status)
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

// CompleteWithdrawal godoc
//
//	@Summary		Complete withdrawal
//	@Description	Mark a pending withdrawal as paid out and debit one token from the requester.
//	@Tags			Администрирование
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Withdrawal id"
//	@Success		200	{object}	dto.WithdrawalResponseDTO	"Completed withdrawal"
//	@Failure		400	{object}	utils.Response				"Invalid id"
//	@Failure		402	{object}	utils.Response				"Requester has no tokens left"
//	@Failure		403	{object}	utils.Response				"Caller is not an admin"
//	@Failure		404	{object}	utils.Response				"Withdrawal not found"
//	@Failure		409	{object}	utils.Response				"Withdrawal is no longer pending"
//	@Failure		503	{object}	utils.Response				"Try again"
//	@Router			/api/admin/withdrawals/{id}/complete [post]
func (h *AdminHandler) CompleteWithdrawal(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(auth.UserIDKey).(uuid.UUID)
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	withdrawal, err := h.withdrawalService.Complete(r.Context(), id, actor)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponse(withdrawal))
}

// RejectWithdrawal godoc
//
//	@Summary	Reject withdrawal
//	@Tags		Администрирование
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string						true	"Withdrawal id"
//	@Success	200	{object}	dto.WithdrawalResponseDTO	"Rejected withdrawal"
//	@Failure	400	{object}	utils.Response				"Invalid id"
//	@Failure	403	{object}	utils.Response				"Caller is not an admin"
//	@Failure	404	{object}	utils.Response				"Withdrawal not found"
//	@Failure	409	{object}	utils.Response				"Withdrawal is no longer pending"
//	@Failure	503	{object}	utils.Response				"Try again"
//	@Router		/api/admin/withdrawals/{id}/reject [post]
func (h *AdminHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(auth.UserIDKey).(uuid.UUID)
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	withdrawal, err := h.withdrawalService.Reject(r.Context(), id, actor)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWithdrawalResponse(withdrawal))
}

// GetProfiles godoc
//
//	@Summary	List profiles
//	@Tags		Администрирование
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.ProfileResponseDTO	"Profiles, newest first"
//	@Success	204	{object}	utils.Response			"No profiles"
//	@Failure	403	{object}	utils.Response			"Caller is not an admin"
//	@Failure	503	{object}	utils.Response			"Try again"
//	@Router		/api/admin/profiles [get]
func (h *AdminHandler) GetProfiles(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	profiles, err := h.profileService.List(r.Context(), actor)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(profiles) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProfileList(profiles))
}

// SetAdmin godoc
//
//	@Summary	Grant or revoke admin
//	@Tags		Администрирование
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Profile id"
//	@Param		request	body		dto.SetAdminRequestDTO	true	"Admin flag"
//	@Success	200		{object}	utils.Response			"Admin flag updated"
//	@Failure	400		{object}	utils.Response			"Invalid id or body"
//	@Failure	403		{object}	utils.Response			"Caller is not an admin"
//	@Failure	404		{object}	utils.Response			"Profile not found"
//	@Failure	503		{object}	utils.Response			"Try again"
//	@Router		/api/admin/profiles/{id}/admin [put]
func (h *AdminHandler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	actor := r.Context().Value(auth.UserIDKey).(uuid.UUID)
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.SetAdminRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.profileService.SetAdmin(r.Context(), actor, id, req.IsAdmin); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "admin flag updated"})
}
