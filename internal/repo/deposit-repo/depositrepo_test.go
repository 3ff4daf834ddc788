package depositrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/investledger/internal/domain"
)

var depositColumns = []string{"id", "user_id", "amount", "plan_id", "status", "payment_proof", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	deposit := &domain.Deposit{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Amount:       decimal.NewFromInt(100),
		PlanID:       domain.CategoryStock,
		Status:       domain.DepositPending,
		PaymentProof: "proofs/a.png",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO deposits (id, user_id, amount, plan_id, status, payment_proof) VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`)).
		WithArgs(deposit.ID, deposit.UserID, deposit.Amount, deposit.PlanID, deposit.Status, deposit.PaymentProof).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	err := repo.Create(context.Background(), deposit)

	assert.NoError(t, err)
	assert.Equal(t, now, deposit.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	id, userID := uuid.New(), uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta(`SELECT id, user_id, amount, plan_id, status, payment_proof, created_at FROM deposits WHERE id = $1 FOR UPDATE`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.Deposit
	}{
		{
			name: "Deposit exists",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(id).
					WillReturnRows(pgxmock.NewRows(depositColumns).
						AddRow(id, userID, decimal.NewFromInt(36), domain.CategoryCrypto, domain.DepositPending, "p", now))
			},
			result: &domain.Deposit{
				ID:           id,
				UserID:       userID,
				Amount:       decimal.NewFromInt(36),
				PlanID:       domain.CategoryCrypto,
				Status:       domain.DepositPending,
				PaymentProof: "p",
				CreatedAt:    now,
			},
		},
		{
			name: "Deposit does not exist",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).WillReturnError(errors.New("database error"))
			},
			expectErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetForUpdate(context.Background(), id)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE deposits SET status = $3 WHERE id = $1 AND status = $2`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Pending deposit approved",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(id, domain.DepositPending, domain.DepositApproved).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Deposit already moved",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(id, domain.DepositPending, domain.DepositApproved).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateStatus(context.Background(), id, domain.DepositPending, domain.DepositApproved)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Lists(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM deposits WHERE user_id = $1 ORDER BY created_at DESC`)).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(depositColumns).
			AddRow(uuid.New(), userID, decimal.NewFromInt(36), domain.CategoryCrypto, domain.DepositApproved, "p1", now).
			AddRow(uuid.New(), userID, decimal.NewFromInt(500), domain.CategoryPhysical, domain.DepositPending, "p2", now))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM deposits WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC`)).
		WithArgs("pending").
		WillReturnRows(pgxmock.NewRows(depositColumns).
			AddRow(uuid.New(), userID, decimal.NewFromInt(500), domain.CategoryPhysical, domain.DepositPending, "p2", now))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM deposits WHERE ($1 = '' OR status = $1)`)).
		WithArgs("").
		WillReturnError(errors.New("database error"))

	mine, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	pending, err := repo.List(context.Background(), domain.DepositPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, domain.DepositPending, pending[0].Status)

	_, err = repo.List(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Totals(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE status = 'approved'`)).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(decimal.NewFromInt(136)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM deposits WHERE status = 'pending'`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	sum, err := repo.SumApproved(context.Background())
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(136)))

	count, err := repo.CountPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
