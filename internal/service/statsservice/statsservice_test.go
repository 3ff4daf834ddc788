package statsservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/investledger/internal/domain"
)

func TestDashboard(t *testing.T) {
	admin := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func(p *MockProfileCounter, d *MockDepositTotals, w *MockWithdrawalTotals, pl *MockPlanCounter, g *MockGate)
		expected      *domain.Dashboard
		expectedError error
	}{
		{
			name: "All figures collected",
			prepareMock: func(p *MockProfileCounter, d *MockDepositTotals, w *MockWithdrawalTotals, pl *MockPlanCounter, g *MockGate) {
				g.EXPECT().Authorize(gomock.Any(), admin).Return(nil)
				p.EXPECT().Count(gomock.Any()).Return(int64(12), nil)
				d.EXPECT().SumApproved(gomock.Any()).Return(decimal.NewFromInt(1500), nil)
				d.EXPECT().CountPending(gomock.Any()).Return(int64(3), nil)
				w.EXPECT().SumCompleted(gomock.Any()).Return(decimal.NewFromInt(200), nil)
				w.EXPECT().CountPending(gomock.Any()).Return(int64(1), nil)
				pl.EXPECT().CountActive(gomock.Any()).Return(int64(9), nil)
			},
			expected: &domain.Dashboard{
				TotalProfiles:      12,
				ApprovedDeposits:   decimal.NewFromInt(1500),
				PendingDeposits:    3,
				CompletedWithdrawn: decimal.NewFromInt(200),
				PendingWithdrawals: 1,
				ActivePlans:        9,
			},
		},
		{
			name: "Non-admin is forbidden",
			prepareMock: func(p *MockProfileCounter, d *MockDepositTotals, w *MockWithdrawalTotals, pl *MockPlanCounter, g *MockGate) {
				g.EXPECT().Authorize(gomock.Any(), admin).Return(domain.ErrForbidden)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name: "One query fails",
			prepareMock: func(p *MockProfileCounter, d *MockDepositTotals, w *MockWithdrawalTotals, pl *MockPlanCounter, g *MockGate) {
				g.EXPECT().Authorize(gomock.Any(), admin).Return(nil)
				p.EXPECT().Count(gomock.Any()).Return(int64(12), nil).AnyTimes()
				d.EXPECT().SumApproved(gomock.Any()).Return(decimal.Zero, domain.ErrStoreUnavailable).AnyTimes()
				d.EXPECT().CountPending(gomock.Any()).Return(int64(3), nil).AnyTimes()
				w.EXPECT().SumCompleted(gomock.Any()).Return(decimal.Zero, nil).AnyTimes()
				w.EXPECT().CountPending(gomock.Any()).Return(int64(1), nil).AnyTimes()
				pl.EXPECT().CountActive(gomock.Any()).Return(int64(9), nil).AnyTimes()
			},
			expectedError: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			p := NewMockProfileCounter(ctrl)
			d := NewMockDepositTotals(ctrl)
			w := NewMockWithdrawalTotals(ctrl)
			pl := NewMockPlanCounter(ctrl)
			g := NewMockGate(ctrl)
			tt.prepareMock(p, d, w, pl, g)

			service := New(p, d, w, pl, g)
			result, err := service.Dashboard(context.Background(), admin)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
