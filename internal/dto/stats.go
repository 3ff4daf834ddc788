package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/investledger/internal/domain"
)

type DashboardResponseDTO struct {
	TotalProfiles      int64           `json:"total_profiles" example:"120"`
	ApprovedDeposits   decimal.Decimal `json:"approved_deposits" swaggertype:"string" example:"15400"`
	PendingDeposits    int64           `json:"pending_deposits" example:"3"`
	CompletedWithdrawn decimal.Decimal `json:"completed_withdrawn" swaggertype:"string" example:"2300"`
	PendingWithdrawals int64           `json:"pending_withdrawals" example:"1"`
	ActivePlans        int64           `json:"active_plans" example:"87"`
}

func NewDashboardResponse(d *domain.Dashboard) DashboardResponseDTO {
	return DashboardResponseDTO{
		TotalProfiles:      d.TotalProfiles,
		ApprovedDeposits:   d.ApprovedDeposits,
		PendingDeposits:    d.PendingDeposits,
		CompletedWithdrawn: d.CompletedWithdrawn,
		PendingWithdrawals: d.PendingWithdrawals,
		ActivePlans:        d.ActivePlans,
	}
}
