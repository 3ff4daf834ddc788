//go:generate mockgen -source=maturity.go -destination=mock_maturity.go -package=maturity
package maturity

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/investledger/internal/config"
	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/metrics"
)

const workers = 10

type PlanRepo interface {
	FindMatured(ctx context.Context, now time.Time, limit uint32) ([]domain.Plan, error)
	Complete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service periodically moves active plans past their end date to completed. Balances are never touched.
type Service struct {
	plans      PlanRepo
	schedule   string
	limit      uint32
	timeout    time.Duration
	workerPool WorkerPoolI
	cron       *cron.Cron
	now        func() time.Time
}

func New(cfg *config.Config, plans PlanRepo) *Service {
	return &Service{
		plans:      plans,
		schedule:   cfg.MaturitySchedule,
		limit:      cfg.MaturityBatch,
		timeout:    cfg.StoreTimeout,
		workerPool: NewWorkerPool(workers),
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		now:        time.Now,
	}
}

func (s *Service) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() { s.sweep(ctx) }); err != nil {
		return fmt.Errorf("invalid maturity schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	zap.L().Info("Maturity worker started", zap.String("schedule", s.schedule))

	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
		s.workerPool.Close()
		zap.L().Info("Context canceled, maturity worker stopped")
	}()
	return nil
}

// sweep completes one batch of matured plans and returns how many it moved. The whole batch
// shares one store deadline so a hung sweep cannot block later runs.
func (s *Service) sweep(ctx context.Context) int64 {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	plans, err := s.plans.FindMatured(ctx, s.now().UTC(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch matured plans", zap.Error(err))
		return 0
	}

	var (
		completed atomic.Int64
		tasks     sync.WaitGroup
		g         errgroup.Group
	)
	for _, plan := range plans {
		plan := plan
		tasks.Add(1)

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer tasks.Done()
				return s.complete(ctx, plan, &completed)
			})
			if err != nil {
				tasks.Done()
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling plan completion", zap.Error(err))
	}
	tasks.Wait()

	n := completed.Load()
	if n > 0 {
		metrics.PlansMatured.Add(float64(n))
		zap.L().Info("Plans matured", zap.Int64("count", n))
	}
	return n
}

func (s *Service) complete(ctx context.Context, plan domain.Plan, completed *atomic.Int64) error {
	ok, err := s.plans.Complete(ctx, plan.ID)
	if err != nil {
		return fmt.Errorf("failed to complete plan %s: %w", plan.ID, err)
	}
	if !ok {
		zap.L().Debug("Plan already completed", zap.String("plan", plan.ID.String()))
		return nil
	}
	completed.Add(1)
	return nil
}
