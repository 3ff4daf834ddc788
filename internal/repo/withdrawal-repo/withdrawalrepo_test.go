package withdrawalrepo

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

var withdrawalColumns = []string{"id", "user_id", "amount", "status", "created_at", "processed_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	query := regexp.QuoteMeta(`
		INSERT INTO withdrawals (id, user_id, amount, status)
		VALUES ($1, $2, $3, $4) RETURNING created_at`)

	tests := []struct {
		name       string
		withdrawal *domain.Withdrawal
		mockSetup  func(wd *domain.Withdrawal)
		expectErr  bool
	}{
		{
			name: "Create withdrawal successfully",
			withdrawal: &domain.Withdrawal{
				ID:     uuid.New(),
				UserID: uuid.New(),
				Amount: decimal.NewFromInt(25),
				Status: domain.WithdrawalPending,
			},
			mockSetup: func(wd *domain.Withdrawal) {
				mock.ExpectQuery(query).
					WithArgs(wd.ID, wd.UserID, wd.Amount, wd.Status).
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))
			},
		},
		{
			name: "Database error",
			withdrawal: &domain.Withdrawal{
				ID:     uuid.New(),
				UserID: uuid.New(),
				Amount: decimal.NewFromInt(25),
				Status: domain.WithdrawalPending,
			},
			mockSetup: func(wd *domain.Withdrawal) {
				mock.ExpectQuery(query).
					WithArgs(wd.ID, wd.UserID, wd.Amount, wd.Status).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.withdrawal)
			err := repo.Create(ctx, tt.withdrawal)
			if tt.expectErr {
				assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, now, tt.withdrawal.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	id, userID := uuid.New(), uuid.New()
	now := time.Now()
	query := regexp.QuoteMeta(`SELECT id, user_id, amount, status, created_at, processed_at FROM withdrawals WHERE id = $1 FOR UPDATE`)

	mock.ExpectQuery(query).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(withdrawalColumns).
			AddRow(id, userID, decimal.NewFromInt(25), domain.WithdrawalPending, now, nil))
	mock.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)

	wd, err := repo.GetForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, &domain.Withdrawal{
		ID:        id,
		UserID:    userID,
		Amount:    decimal.NewFromInt(25),
		Status:    domain.WithdrawalPending,
		CreatedAt: now,
	}, wd)

	wd, err = repo.GetForUpdate(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, wd)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE withdrawals SET status = $3, processed_at = NOW() WHERE id = $1 AND status = $2`)

	mock.ExpectExec(query).
		WithArgs(id, domain.WithdrawalPending, domain.WithdrawalCompleted).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(query).
		WithArgs(id, domain.WithdrawalPending, domain.WithdrawalRejected).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.NoError(t, repo.UpdateStatus(context.Background(), id, domain.WithdrawalPending, domain.WithdrawalCompleted))
	assert.ErrorIs(t,
		repo.UpdateStatus(context.Background(), id, domain.WithdrawalPending, domain.WithdrawalRejected),
		domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Withdrawals found",
			mockSetup: func() {
				rows := pgxmock.NewRows(withdrawalColumns).
					AddRow(uuid.New(), userID, decimal.NewFromInt(10), domain.WithdrawalCompleted, now, &now).
					AddRow(uuid.New(), userID, decimal.NewFromInt(20), domain.WithdrawalPending, now, nil)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC`)).
					WithArgs(userID).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC`)).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.ListByUser(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, result, tt.count)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListAndTotals(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM withdrawals WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC`)).
		WithArgs("").
		WillReturnRows(pgxmock.NewRows(withdrawalColumns).
			AddRow(uuid.New(), uuid.New(), decimal.NewFromInt(10), domain.WithdrawalRejected, now, &now))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE status = 'completed'`)).
		WillReturnRows(pgxmock.NewRows([]string{"sum"}).AddRow(decimal.NewFromInt(70)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM withdrawals WHERE status = 'pending'`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	all, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	sum, err := repo.SumCompleted(context.Background())
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(70)))

	count, err := repo.CountPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
