//go:generate mockgen -source=statsservice.go -destination=mock_statsservice.go -package=statsservice
package statsservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/investledger/internal/domain"
)

type ProfileCounter interface {
	Count(ctx context.Context) (int64, error)
}

type DepositTotals interface {
	SumApproved(ctx context.Context) (decimal.Decimal, error)
	CountPending(ctx context.Context) (int64, error)
}

type WithdrawalTotals interface {
	SumCompleted(ctx context.Context) (decimal.Decimal, error)
	CountPending(ctx context.Context) (int64, error)
}

type PlanCounter interface {
	CountActive(ctx context.Context) (int64, error)
}

type Gate interface {
	Authorize(ctx context.Context, actor uuid.UUID) error
}

type Service struct {
	profiles    ProfileCounter
	deposits    DepositTotals
	withdrawals WithdrawalTotals
	plans       PlanCounter
	gate        Gate
}

func New(profiles ProfileCounter, deposits DepositTotals, withdrawals WithdrawalTotals, plans PlanCounter, gate Gate) *Service {
	return &Service{
		profiles:    profiles,
		deposits:    deposits,
		withdrawals: withdrawals,
		plans:       plans,
		gate:        gate,
	}
}

// Dashboard collects the admin overview figures concurrently; the first failing query cancels the rest.
func (s *Service) Dashboard(ctx context.Context, actor uuid.UUID) (*domain.Dashboard, error) {
	if err := s.gate.Authorize(ctx, actor); err != nil {
		return nil, err
	}

	var d domain.Dashboard
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.TotalProfiles, err = s.profiles.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.ApprovedDeposits, err = s.deposits.SumApproved(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.PendingDeposits, err = s.deposits.CountPending(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.CompletedWithdrawn, err = s.withdrawals.SumCompleted(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.PendingWithdrawals, err = s.withdrawals.CountPending(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.ActivePlans, err = s.plans.CountActive(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build dashboard", zap.Error(err))
		return nil, err
	}
	return &d, nil
}
