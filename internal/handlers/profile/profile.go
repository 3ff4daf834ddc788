//go:generate mockgen -source=profile.go -destination=mock_profile.go -package=profile
package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/dto"
	"github.com/GlebRadaev/investledger/internal/handlers/httperr"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, fullName, email, referralCode string) (*domain.Profile, error)
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpdateWallet(ctx context.Context, userID uuid.UUID, wallet string) error
}

type ReferralService interface {
	ListReferrals(ctx context.Context, referrerID uuid.UUID) ([]domain.Referral, error)
	TokenBalance(ctx context.Context, userID uuid.UUID) (int64, error)
}

type ProfileHandler struct {
	profileService  Service
	referralService ReferralService
}

func New(profileService Service, referralService ReferralService) *ProfileHandler {
	return &ProfileHandler{
		profileService:  profileService,
		referralService: referralService,
	}
}

// CreateProfile godoc
//
//	@Summary		Create profile
//	@Description	Create the investor profile of the authenticated user, optionally linked to a referrer by code.
//	@Tags			Профиль
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateProfileRequestDTO	true	"Profile payload"
//	@Success		201		{object}	dto.ProfileResponseDTO		"Profile created"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		409		{object}	utils.Response				"Profile already exists"
//	@Failure		422		{object}	utils.Response				"Invalid referral code"
//	@Failure		503		{object}	utils.Response				"Try again"
//	@Router			/api/profile [post]
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.CreateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.FullName) == "" || !strings.Contains(req.Email, "@") {
		utils.RespondWithError(w, http.StatusBadRequest, "full name and email are required")
		return
	}

	profile, err := h.profileService.Create(r.Context(), userID, req.FullName, req.Email, req.ReferralCode)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewProfileResponse(profile, 0))
}

// GetProfile godoc
//
//	@Summary		Get profile
//	@Description	Profile of the authenticated user together with the token balance.
//	@Tags			Профиль
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO	"Profile"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Profile not found"
//	@Failure		503	{object}	utils.Response			"Try again"
//	@Router			/api/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	profile, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	tokens, err := h.referralService.TokenBalance(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewProfileResponse(profile, tokens))
}

// UpdateWallet godoc
//
//	@Summary		Set payout wallet
//	@Description	Set or clear (empty string) the Binance wallet used for withdrawals.
//	@Tags			Профиль
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateWalletRequestDTO	true	"Wallet payload"
//	@Success		200		{object}	utils.Response				"Wallet updated"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Profile not found"
//	@Failure		503		{object}	utils.Response				"Try again"
//	@Router			/api/profile/wallet [put]
func (h *ProfileHandler) UpdateWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	var req dto.UpdateWalletRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.profileService.UpdateWallet(r.Context(), userID, req.BinanceWallet); err != nil {
		httperr.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "wallet updated"})
}

// GetReferrals godoc
//
//	@Summary		List my referrals
//	@Description	Referrals made with the caller's code. Every two active referrals earn one token.
//	@Tags			Профиль
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReferralResponseDTO	"Referrals"
//	@Success		204	{object}	utils.Response			"No referrals"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		503	{object}	utils.Response			"Try again"
//	@Router			/api/profile/referrals [get]
func (h *ProfileHandler) GetReferrals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(uuid.UUID)

	referrals, err := h.referralService.ListReferrals(r.Context(), userID)
	if err != nil {
		httperr.Respond(w, err)
		return
	}
	if len(referrals) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReferralList(referrals))
}
