package withdrawalservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
)

type mocks struct {
	withdrawals *MockWithdrawalRepo
	tokens      *MockTokenRepo
	profiles    *MockProfileRepo
	gate        *MockGate
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		AnyTimes()

	m := &mocks{
		withdrawals: NewMockWithdrawalRepo(ctrl),
		tokens:      NewMockTokenRepo(ctrl),
		profiles:    NewMockProfileRepo(ctrl),
		gate:        NewMockGate(ctrl),
	}
	return New(txManager, m.withdrawals, m.tokens, m.profiles, m.gate), m
}

func TestSubmit(t *testing.T) {
	service, m := NewMock(t)
	user := uuid.New()
	wallet := "0xabc"

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Withdrawal requested",
			amount: decimal.NewFromInt(100),
			prepareMock: func() {
				m.profiles.EXPECT().GetByID(gomock.Any(), user).Return(&domain.Profile{ID: user, BinanceWallet: &wallet}, nil)
				m.tokens.EXPECT().GetByUser(gomock.Any(), user).Return(&domain.Token{UserID: user, Amount: 1}, nil)
				m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "Zero amount",
			amount:        decimal.Zero,
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Amount overflows the ledger column",
			amount:        decimal.RequireFromString("1e14"),
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Negative amount",
			amount:        decimal.NewFromInt(-5),
			prepareMock:   func() {},
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:   "Unknown profile",
			amount: decimal.NewFromInt(10),
			prepareMock: func() {
				m.profiles.EXPECT().GetByID(gomock.Any(), user).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:   "Wallet not configured",
			amount: decimal.NewFromInt(10),
			prepareMock: func() {
				m.profiles.EXPECT().GetByID(gomock.Any(), user).Return(&domain.Profile{ID: user}, nil)
			},
			expectedError: domain.ErrWalletNotConfigured,
		},
		{
			name:   "Wallet is checked before tokens",
			amount: decimal.NewFromInt(10),
			prepareMock: func() {
				m.profiles.EXPECT().GetByID(gomock.Any(), user).Return(&domain.Profile{ID: user}, nil)
				m.tokens.EXPECT().GetByUser(gomock.Any(), user).Return(&domain.Token{UserID: user}, nil).Times(0)
			},
			expectedError: domain.ErrWalletNotConfigured,
		},
		{
			name:   "No tokens",
			amount: decimal.NewFromInt(10),
			prepareMock: func() {
				m.profiles.EXPECT().GetByID(gomock.Any(), user).Return(&domain.Profile{ID: user, BinanceWallet: &wallet}, nil)
				m.tokens.EXPECT().GetByUser(gomock.Any(), user).Return(&domain.Token{UserID: user, Amount: 0}, nil)
			},
			expectedError: domain.ErrInsufficientTokens,
		},
		{
			name:   "No token row",
			amount: decimal.NewFromInt(10),
			prepareMock: func() {
				m.profiles.EXPECT().GetByID(gomock.Any(), user).Return(&domain.Profile{ID: user, BinanceWallet: &wallet}, nil)
				m.tokens.EXPECT().GetByUser(gomock.Any(), user).Return(nil, nil)
			},
			expectedError: domain.ErrInsufficientTokens,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wd, err := service.Submit(context.Background(), user, tt.amount)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, wd)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.WithdrawalPending, wd.Status)
			assert.Equal(t, user, wd.UserID)
		})
	}
}

func TestComplete(t *testing.T) {
	service, m := NewMock(t)
	admin, user, id := uuid.New(), uuid.New(), uuid.New()
	pending := func() *domain.Withdrawal {
		return &domain.Withdrawal{ID: id, UserID: user, Amount: decimal.NewFromInt(10), Status: domain.WithdrawalPending}
	}

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Completed with one token debited",
			prepareMock: func() {
				m.gate.EXPECT().Authorize(gomock.Any(), admin).Return(nil)
				m.withdrawals.EXPECT().GetForUpdate(gomock.Any(), id).Return(pending(), nil)
				m.tokens.EXPECT().DecrementOne(gomock.Any(), user).Return(nil)
				m.withdrawals.EXPECT().UpdateStatus(gomock.Any(), id, domain.WithdrawalPending, domain.WithdrawalCompleted).Return(nil)
			},
		},
		{
			name: "Non-admin is forbidden",
			prepareMock: func() {
				m.gate.EXPECT().Authorize(gomock.Any(), admin).Return(domain.ErrForbidden)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name: "Unknown withdrawal",
			prepareMock: func() {
				m.gate.EXPECT().Authorize(gomock.Any(), admin).Return(nil)
				m.withdrawals.EXPECT().GetForUpdate(gomock.Any(), id).Return(nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name: "Already completed",
			prepareMock: func() {
				wd := pending()
				wd.Status = domain.WithdrawalCompleted
				m.gate.EXPECT().Authorize(gomock.Any(), admin).Return(nil)
				m.withdrawals.EXPECT().GetForUpdate(gomock.Any(), id).Return(wd, nil)
			},
			expectedError: domain.ErrInvalidStateTransition,
		},
		{
			name: "Tokens spent since submission",
			prepareMock: func() {
				m.gate.EXPECT().Authorize(gomock.Any(), admin).Return(nil)
				m.withdrawals.EXPECT().GetForUpdate(gomock.Any(), id).Return(pending(), nil)
				m.tokens.EXPECT().DecrementOne(gomock.Any(), user).Return(domain.ErrInsufficientTokens)
			},
			expectedError: domain.ErrInsufficientTokens,
		},
		{
			name: "Status changed concurrently",
			prepareMock: func() {
				m.gate.EXPECT().Authorize(gomock.Any(), admin).Return(nil)
				m.withdrawals.EXPECT().GetForUpdate(gomock.Any(), id).Return(pending(), nil)
				m.tokens.EXPECT().DecrementOne(gomock.Any(), user).Return(nil)
				m.withdrawals.EXPECT().UpdateStatus(gomock.Any(), id, domain.WithdrawalPending, domain.WithdrawalCompleted).
					Return(domain.ErrConflict)
			},
			expectedError: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wd, err := service.Complete(context.Background(), id, admin)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, wd)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.WithdrawalCompleted, wd.Status)
		})
	}
}

func TestWalletThenTokensScenario(t *testing.T) {
	service, m := NewMock(t)
	admin, user := uuid.New(), uuid.New()
	profile := &domain.Profile{ID: user}
	token := &domain.Token{UserID: user}
	var created *domain.Withdrawal

	m.profiles.EXPECT().GetByID(gomock.Any(), user).Return(profile, nil).AnyTimes()
	m.tokens.EXPECT().GetByUser(gomock.Any(), user).Return(token, nil).AnyTimes()
	m.tokens.EXPECT().DecrementOne(gomock.Any(), user).DoAndReturn(func(context.Context, uuid.UUID) error {
		if token.Amount < 1 {
			return domain.ErrInsufficientTokens
		}
		token.Amount--
		return nil
	}).AnyTimes()
	m.withdrawals.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, wd *domain.Withdrawal) error {
		created = wd
		return nil
	})
	m.withdrawals.EXPECT().GetForUpdate(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, uuid.UUID) (*domain.Withdrawal, error) {
		wd := *created
		return &wd, nil
	})
	m.withdrawals.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), domain.WithdrawalPending, domain.WithdrawalCompleted).
		DoAndReturn(func(context.Context, uuid.UUID, domain.WithdrawalStatus, domain.WithdrawalStatus) error {
			created.Status = domain.WithdrawalCompleted
			return nil
		})
	m.gate.EXPECT().Authorize(gomock.Any(), user).Return(domain.ErrForbidden)
	m.gate.EXPECT().Authorize(gomock.Any(), admin).Return(nil)

	_, err := service.Submit(context.Background(), user, decimal.NewFromInt(50))
	assert.ErrorIs(t, err, domain.ErrWalletNotConfigured)

	wallet := "0xabc"
	profile.BinanceWallet = &wallet
	token.Amount = 1

	wd, err := service.Submit(context.Background(), user, decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalPending, wd.Status)

	_, err = service.Complete(context.Background(), wd.ID, user)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	done, err := service.Complete(context.Background(), wd.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalCompleted, done.Status)
	assert.Equal(t, int64(0), token.Amount)
}

func TestReject(t *testing.T) {
	service, m := NewMock(t)
	admin, id := uuid.New(), uuid.New()

	m.gate.EXPECT().Authorize(gomock.Any(), admin).Return(nil).Times(2)
	m.withdrawals.EXPECT().GetForUpdate(gomock.Any(), id).
		Return(&domain.Withdrawal{ID: id, Status: domain.WithdrawalPending}, nil)
	m.withdrawals.EXPECT().UpdateStatus(gomock.Any(), id, domain.WithdrawalPending, domain.WithdrawalRejected).Return(nil)
	m.withdrawals.EXPECT().GetForUpdate(gomock.Any(), id).
		Return(&domain.Withdrawal{ID: id, Status: domain.WithdrawalRejected}, nil)

	wd, err := service.Reject(context.Background(), id, admin)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalRejected, wd.Status)

	_, err = service.Reject(context.Background(), id, admin)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestLists(t *testing.T) {
	service, m := NewMock(t)
	user, admin := uuid.New(), uuid.New()
	withdrawals := []domain.Withdrawal{{ID: uuid.New(), UserID: user}}

	m.withdrawals.EXPECT().ListByUser(gomock.Any(), user).Return(withdrawals, nil)
	m.gate.EXPECT().Authorize(gomock.Any(), admin).Return(nil)
	m.withdrawals.EXPECT().List(gomock.Any(), domain.WithdrawalPending).Return(withdrawals, nil)

	mine, err := service.ListMine(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, withdrawals, mine)

	all, err := service.List(context.Background(), admin, domain.WithdrawalPending)
	assert.NoError(t, err)
	assert.Equal(t, withdrawals, all)
}
