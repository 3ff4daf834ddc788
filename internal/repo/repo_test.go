package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/investledger/internal/pg"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(pg.New(mockDB)), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.ProfileRepo)
	assert.NotNil(t, repo.DepositRepo)
	assert.NotNil(t, repo.PlanRepo)
	assert.NotNil(t, repo.TokenRepo)
	assert.NotNil(t, repo.ReferralRepo)
	assert.NotNil(t, repo.WithdrawalRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
