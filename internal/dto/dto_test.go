package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/investledger/internal/domain"
)

func TestNewProfileResponse(t *testing.T) {
	wallet := "0xabc"
	p := &domain.Profile{
		ID:             uuid.New(),
		FullName:       "Ann",
		BinanceWallet:  &wallet,
		InvestedAmount: decimal.RequireFromString("136.50"),
		ReferralCode:   "2345678907",
	}

	resp := NewProfileResponse(p, 2)
	assert.Equal(t, p.ID, resp.ID)
	assert.Equal(t, int64(2), resp.Tokens)
	assert.Equal(t, &wallet, resp.BinanceWallet)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"invested_amount":"136.5"`)
}

func TestWithdrawalRequestAcceptsNumberAndString(t *testing.T) {
	for _, body := range []string{`{"amount":250.75}`, `{"amount":"250.75"}`} {
		var req WithdrawalRequestDTO
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		assert.True(t, decimal.RequireFromString("250.75").Equal(req.Amount), body)
	}
}

func TestNewLists(t *testing.T) {
	now := time.Now()
	deposits := []domain.Deposit{{ID: uuid.New(), PlanID: domain.CategoryNFT, Status: domain.DepositPending, CreatedAt: now}}
	plans := []domain.Plan{{ID: uuid.New(), Category: domain.CategoryNFT, Status: domain.PlanActive}}
	withdrawals := []domain.Withdrawal{{ID: uuid.New(), Status: domain.WithdrawalCompleted, ProcessedAt: &now}}
	referrals := []domain.Referral{{ID: uuid.New(), Status: domain.ReferralActive}}

	assert.Equal(t, "nft", NewDepositList(deposits)[0].PlanID)
	assert.Equal(t, "active", NewPlanList(plans)[0].Status)
	assert.Equal(t, &now, NewWithdrawalList(withdrawals)[0].ProcessedAt)
	assert.Equal(t, "active", NewReferralList(referrals)[0].Status)
	assert.Empty(t, NewProfileList(nil))
}
