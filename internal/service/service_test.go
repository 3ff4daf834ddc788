package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	services := New(repo.New(pg.New(mockDB)), pg.NewMockTXManager(ctrl), func(string) bool { return false })

	assert.NotNil(t, services.AuthzService)
	assert.NotNil(t, services.ProfileService)
	assert.NotNil(t, services.ReferralService)
	assert.NotNil(t, services.DepositService)
	assert.NotNil(t, services.WithdrawalService)
	assert.NotNil(t, services.StatsService)
}
