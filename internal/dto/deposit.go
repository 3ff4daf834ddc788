package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/investledger/internal/domain"
)

type DepositResponseDTO struct {
	ID           uuid.UUID       `json:"id" example:"3a4f6f0c-8a1b-4d7e-9a55-2f0d0b7e1c33"`
	UserID       uuid.UUID       `json:"user_id" example:"9b2f7a3c-3a0e-4d8f-9a49-6d0f3c1f5b11"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
	PlanID       string          `json:"plan_id" example:"stock"`
	Status       string          `json:"status" example:"pending"`
	PaymentProof string          `json:"payment_proof" example:"9b2f7a3c-3a0e-4d8f-9a49-6d0f3c1f5b11/0d6c.png"`
	CreatedAt    time.Time       `json:"created_at" example:"2024-12-09T16:09:57Z"`
}

type PlanResponseDTO struct {
	ID        uuid.UUID       `json:"id" example:"1f0c5b7e-6a2d-4c1e-8b3f-9d4a7e2c6b10"`
	DepositID uuid.UUID       `json:"deposit_id" example:"3a4f6f0c-8a1b-4d7e-9a55-2f0d0b7e1c33"`
	Category  string          `json:"category" example:"stock"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
	StartDate time.Time       `json:"start_date" example:"2024-12-09T16:09:57Z"`
	EndDate   time.Time       `json:"end_date" example:"2025-01-08T16:09:57Z"`
	Status    string          `json:"status" example:"active"`
}

type ApproveDepositResponseDTO struct {
	Deposit DepositResponseDTO `json:"deposit"`
	Plan    PlanResponseDTO    `json:"plan"`
}

func NewDepositResponse(d *domain.Deposit) DepositResponseDTO {
	return DepositResponseDTO{
		ID:           d.ID,
		UserID:       d.UserID,
		Amount:       d.Amount,
		PlanID:       string(d.PlanID),
		Status:       string(d.Status),
		PaymentProof: d.PaymentProof,
		CreatedAt:    d.CreatedAt,
	}
}

func NewDepositList(deposits []domain.Deposit) []DepositResponseDTO {
	response := make([]DepositResponseDTO, len(deposits))
	for i := range deposits {
		response[i] = NewDepositResponse(&deposits[i])
	}
	return response
}

func NewPlanResponse(p *domain.Plan) PlanResponseDTO {
	return PlanResponseDTO{
		ID:        p.ID,
		DepositID: p.DepositID,
		Category:  string(p.Category),
		Amount:    p.Amount,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Status:    string(p.Status),
	}
}

func NewPlanList(plans []domain.Plan) []PlanResponseDTO {
	response := make([]PlanResponseDTO, len(plans))
	for i := range plans {
		response[i] = NewPlanResponse(&plans[i])
	}
	return response
}
