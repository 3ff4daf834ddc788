package domain

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMinDeposit(t *testing.T) {
	tests := []struct {
		category PlanCategory
		minimum  int64
		ok       bool
	}{
		{CategoryCrypto, 36, true},
		{CategoryNFT, 50, true},
		{CategoryStock, 100, true},
		{CategoryMixed, 200, true},
		{CategoryPhysical, 500, true},
		{PlanCategory("gold"), 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			minimum, ok := MinDeposit(tt.category)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, minimum.Equal(decimal.NewFromInt(tt.minimum)))
			}
		})
	}
}

func TestAmountFits(t *testing.T) {
	assert.True(t, AmountFits(decimal.RequireFromString("9999999999999.99")))
	assert.True(t, AmountFits(decimal.NewFromInt(36)))
	assert.False(t, AmountFits(decimal.RequireFromString("10000000000000")))
	assert.False(t, AmountFits(decimal.RequireFromString("1e14")))
}

func TestProfile_HasWallet(t *testing.T) {
	empty := ""
	wallet := "0xabc"

	assert.False(t, (&Profile{}).HasWallet())
	assert.False(t, (&Profile{BinanceWallet: &empty}).HasWallet())
	assert.True(t, (&Profile{BinanceWallet: &wallet}).HasWallet())
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(ErrStoreUnavailable))
	assert.True(t, IsTransient(fmt.Errorf("approve: %w", ErrConflict)))
	assert.False(t, IsTransient(ErrForbidden))
	assert.False(t, IsTransient(nil))
}
