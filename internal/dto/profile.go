package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/investledger/internal/domain"
)

type CreateProfileRequestDTO struct {
	FullName     string `json:"full_name" example:"Ann Lee"`
	Email        string `json:"email" example:"ann@example.com"`
	ReferralCode string `json:"referral_code,omitempty" example:"1234567897"`
}

type UpdateWalletRequestDTO struct {
	BinanceWallet string `json:"binance_wallet" example:"0x3f5CE5FBFe3E9af3971dD833D26bA9b5C936f0bE"`
}

type SetAdminRequestDTO struct {
	IsAdmin bool `json:"is_admin" example:"true"`
}

type ProfileResponseDTO struct {
	ID             uuid.UUID       `json:"id" example:"9b2f7a3c-3a0e-4d8f-9a49-6d0f3c1f5b11"`
	FullName       string          `json:"full_name" example:"Ann Lee"`
	Email          string          `json:"email" example:"ann@example.com"`
	BinanceWallet  *string         `json:"binance_wallet,omitempty" example:"0x3f5CE5FBFe3E9af3971dD833D26bA9b5C936f0bE"`
	InvestedAmount decimal.Decimal `json:"invested_amount" swaggertype:"string" example:"150"`
	ReferralCode   string          `json:"referral_code" example:"2345678907"`
	IsAdmin        bool            `json:"is_admin" example:"false"`
	Tokens         int64           `json:"tokens" example:"1"`
	CreatedAt      time.Time       `json:"created_at" example:"2024-12-09T16:09:57Z"`
}

type ReferralResponseDTO struct {
	ID          uuid.UUID  `json:"id" example:"5d1e8d44-4a43-4f5c-8a37-3e5c0c1b8c21"`
	ReferredID  uuid.UUID  `json:"referred_id" example:"7c8a2a0e-2e0b-4a5b-9f8a-0a6d3e7b9c10"`
	Status      string     `json:"status" example:"active"`
	CreatedAt   time.Time  `json:"created_at" example:"2024-12-09T16:09:57Z"`
	ActivatedAt *time.Time `json:"activated_at,omitempty" example:"2024-12-10T10:00:00Z"`
}

func NewProfileResponse(p *domain.Profile, tokens int64) ProfileResponseDTO {
	return ProfileResponseDTO{
		ID:             p.ID,
		FullName:       p.FullName,
		Email:          p.Email,
		BinanceWallet:  p.BinanceWallet,
		InvestedAmount: p.InvestedAmount,
		ReferralCode:   p.ReferralCode,
		IsAdmin:        p.IsAdmin,
		Tokens:         tokens,
		CreatedAt:      p.CreatedAt,
	}
}

func NewProfileList(profiles []domain.Profile) []ProfileResponseDTO {
	response := make([]ProfileResponseDTO, len(profiles))
	for i := range profiles {
		response[i] = NewProfileResponse(&profiles[i], 0)
	}
	return response
}

func NewReferralList(referrals []domain.Referral) []ReferralResponseDTO {
	response := make([]ReferralResponseDTO, len(referrals))
	for i, ref := range referrals {
		response[i] = ReferralResponseDTO{
			ID:          ref.ID,
			ReferredID:  ref.ReferredID,
			Status:      string(ref.Status),
			CreatedAt:   ref.CreatedAt,
			ActivatedAt: ref.ActivatedAt,
		}
	}
	return response
}
