package maturity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/investledger/internal/config"
	"github.com/GlebRadaev/investledger/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockPlanRepo) {
	ctrl := gomock.NewController(t)
	plans := NewMockPlanRepo(ctrl)
	cfg := &config.Config{MaturitySchedule: "@every 1h", MaturityBatch: 100, StoreTimeout: time.Second}
	service := New(cfg, plans)
	t.Cleanup(service.workerPool.Close)
	return service, plans
}

func TestSweep(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first, second, third := uuid.New(), uuid.New(), uuid.New()
	matured := []domain.Plan{
		{ID: first, Status: domain.PlanActive},
		{ID: second, Status: domain.PlanActive},
		{ID: third, Status: domain.PlanActive},
	}

	tests := []struct {
		name          string
		prepareMock   func(plans *MockPlanRepo)
		expectedCount int64
	}{
		{
			name: "All matured plans completed",
			prepareMock: func(plans *MockPlanRepo) {
				plans.EXPECT().FindMatured(gomock.Any(), now, uint32(100)).Return(matured, nil)
				plans.EXPECT().Complete(gomock.Any(), first).Return(true, nil)
				plans.EXPECT().Complete(gomock.Any(), second).Return(true, nil)
				plans.EXPECT().Complete(gomock.Any(), third).Return(true, nil)
			},
			expectedCount: 3,
		},
		{
			name: "Plan completed elsewhere is skipped",
			prepareMock: func(plans *MockPlanRepo) {
				plans.EXPECT().FindMatured(gomock.Any(), now, uint32(100)).Return(matured, nil)
				plans.EXPECT().Complete(gomock.Any(), first).Return(true, nil)
				plans.EXPECT().Complete(gomock.Any(), second).Return(false, nil)
				plans.EXPECT().Complete(gomock.Any(), third).Return(true, nil)
			},
			expectedCount: 2,
		},
		{
			name: "Store failure on one plan",
			prepareMock: func(plans *MockPlanRepo) {
				plans.EXPECT().FindMatured(gomock.Any(), now, uint32(100)).Return(matured, nil)
				plans.EXPECT().Complete(gomock.Any(), first).Return(false, domain.ErrStoreUnavailable)
				plans.EXPECT().Complete(gomock.Any(), second).Return(true, nil)
				plans.EXPECT().Complete(gomock.Any(), third).Return(true, nil)
			},
			expectedCount: 2,
		},
		{
			name: "Nothing matured",
			prepareMock: func(plans *MockPlanRepo) {
				plans.EXPECT().FindMatured(gomock.Any(), now, uint32(100)).Return(nil, nil)
			},
		},
		{
			name: "Fetch fails",
			prepareMock: func(plans *MockPlanRepo) {
				plans.EXPECT().FindMatured(gomock.Any(), now, uint32(100)).Return(nil, domain.ErrStoreUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, plans := NewMock(t)
			service.now = func() time.Time { return now }
			tt.prepareMock(plans)

			assert.Equal(t, tt.expectedCount, service.sweep(context.Background()))
		})
	}
}

func TestSweepStoreDeadline(t *testing.T) {
	service, plans := NewMock(t)
	service.timeout = 20 * time.Millisecond
	id := uuid.New()

	plans.EXPECT().FindMatured(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ time.Time, _ uint32) ([]domain.Plan, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(20*time.Millisecond), deadline, 20*time.Millisecond)
			return []domain.Plan{{ID: id, Status: domain.PlanActive}}, nil
		})
	plans.EXPECT().Complete(gomock.Any(), id).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID) (bool, error) {
			<-ctx.Done()
			return false, domain.ErrStoreUnavailable
		})

	done := make(chan int64)
	go func() { done <- service.sweep(context.Background()) }()

	select {
	case n := <-done:
		assert.Equal(t, int64(0), n)
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not stop at the store deadline")
	}
}

func TestSweepWorkerPoolRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	plans := NewMockPlanRepo(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	plans.EXPECT().FindMatured(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Plan{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
	workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, task Task) error { return task() })
	workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(errors.New("pool closed"))
	plans.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(true, nil)

	service := &Service{
		plans:      plans,
		limit:      2,
		workerPool: workerPool,
		now:        time.Now,
	}

	assert.Equal(t, int64(1), service.sweep(context.Background()))
}

func TestStart(t *testing.T) {
	t.Run("Invalid schedule", func(t *testing.T) {
		service, _ := NewMock(t)
		service.schedule = "every now and then"
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Runs until the context ends", func(t *testing.T) {
		service, plans := NewMock(t)
		service.schedule = "@every 1s"
		plans.EXPECT().FindMatured(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, service.Start(ctx))
		time.Sleep(20 * time.Millisecond)
		cancel()
	})
}
