package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/investledger/internal/domain"
)

type WithdrawalRequestDTO struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"250"`
}

type WithdrawalResponseDTO struct {
	ID          uuid.UUID       `json:"id" example:"6e2b1c9d-0f3a-4b8e-a7d5-1c9e8f2a3b44"`
	UserID      uuid.UUID       `json:"user_id" example:"9b2f7a3c-3a0e-4d8f-9a49-6d0f3c1f5b11"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"250"`
	Status      string          `json:"status" example:"pending"`
	CreatedAt   time.Time       `json:"created_at" example:"2024-12-09T16:09:57Z"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty" example:"2024-12-10T10:00:00Z"`
}

func NewWithdrawalResponse(w *domain.Withdrawal) WithdrawalResponseDTO {
	return WithdrawalResponseDTO{
		ID:          w.ID,
		UserID:      w.UserID,
		Amount:      w.Amount,
		Status:      string(w.Status),
		CreatedAt:   w.CreatedAt,
		ProcessedAt: w.ProcessedAt,
	}
}

func NewWithdrawalList(withdrawals []domain.Withdrawal) []WithdrawalResponseDTO {
	response := make([]WithdrawalResponseDTO, len(withdrawals))
	for i := range withdrawals {
		response[i] = NewWithdrawalResponse(&withdrawals[i])
	}
	return response
}
