//go:generate mockgen -source=depositservice.go -destination=mock_depositservice.go -package=depositservice
package depositservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/metrics"
	"github.com/GlebRadaev/investledger/internal/pg"
)

type DepositRepo interface {
	Create(ctx context.Context, deposit *domain.Deposit) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Deposit, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.DepositStatus) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error)
	List(ctx context.Context, status domain.DepositStatus) ([]domain.Deposit, error)
}

type PlanRepo interface {
	Create(ctx context.Context, plan *domain.Plan) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plan, error)
}

type ProfileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	AddInvested(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
}

type ReferralRepo interface {
	ActivateForReferred(ctx context.Context, referredID uuid.UUID) (*domain.Referral, error)
}

type ReferralAccountant interface {
	OnReferralActivated(ctx context.Context, referrerID uuid.UUID) (int64, error)
}

type Gate interface {
	Authorize(ctx context.Context, actor uuid.UUID) error
}

type Service struct {
	txManager  pg.TXManager
	deposits   DepositRepo
	plans      PlanRepo
	profiles   ProfileRepo
	referrals  ReferralRepo
	accountant ReferralAccountant
	gate       Gate
	now        func() time.Time
}

func New(
	txManager pg.TXManager,
	deposits DepositRepo,
	plans PlanRepo,
	profiles ProfileRepo,
	referrals ReferralRepo,
	accountant ReferralAccountant,
	gate Gate,
) *Service {
	return &Service{
		txManager:  txManager,
		deposits:   deposits,
		plans:      plans,
		profiles:   profiles,
		referrals:  referrals,
		accountant: accountant,
		gate:       gate,
		now:        time.Now,
	}
}

func (s *Service) Submit(ctx context.Context, userID uuid.UUID, category domain.PlanCategory, amount decimal.Decimal, proofRef string) (*domain.Deposit, error) {
	minimum, ok := domain.MinDeposit(category)
	if !ok {
		return nil, fmt.Errorf("%q: %w", category, domain.ErrUnknownPlan)
	}
	if amount.LessThan(minimum) {
		return nil, fmt.Errorf("%s plan accepts at least %s: %w", category, minimum, domain.ErrInvalidAmount)
	}
	if !domain.AmountFits(amount) {
		return nil, fmt.Errorf("deposit amount %s exceeds %s: %w", amount, domain.MaxAmount, domain.ErrInvalidAmount)
	}
	if strings.TrimSpace(proofRef) == "" {
		return nil, domain.ErrMissingProof
	}

	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s: %w", userID, domain.ErrNotFound)
	}

	deposit := &domain.Deposit{
		ID:           uuid.New(),
		UserID:       userID,
		Amount:       amount,
		PlanID:       category,
		Status:       domain.DepositPending,
		PaymentProof: proofRef,
	}
	if err := s.deposits.Create(ctx, deposit); err != nil {
		zap.L().Error("failed to create deposit", zap.Error(err))
		return nil, err
	}
	metrics.DepositTransitions.WithLabelValues(string(domain.DepositPending)).Inc()
	return deposit, nil
}

// lockPending loads the deposit under a row lock and checks it can still leave pending.
func (s *Service) lockPending(ctx context.Context, depositID uuid.UUID) (*domain.Deposit, error) {
	deposit, err := s.deposits.GetForUpdate(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit == nil {
		return nil, fmt.Errorf("deposit %s: %w", depositID, domain.ErrNotFound)
	}
	if deposit.Status != domain.DepositPending {
		return nil, fmt.Errorf("deposit %s is %s: %w", depositID, deposit.Status, domain.ErrInvalidStateTransition)
	}
	return deposit, nil
}

// Approve moves a pending deposit to approved and, in the same transaction, credits the
// depositor's invested amount, opens the plan, and activates a pending referral together
// with the referrer's token reconciliation.
func (s *Service) Approve(ctx context.Context, depositID, actor uuid.UUID) (*domain.Deposit, *domain.Plan, error) {
	if err := s.gate.Authorize(ctx, actor); err != nil {
		return nil, nil, err
	}

	var (
		deposit  *domain.Deposit
		plan     *domain.Plan
		credited int64
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		d, err := s.lockPending(ctx, depositID)
		if err != nil {
			return err
		}
		if err := s.deposits.UpdateStatus(ctx, d.ID, domain.DepositPending, domain.DepositApproved); err != nil {
			return err
		}
		d.Status = domain.DepositApproved

		if err := s.profiles.AddInvested(ctx, d.UserID, d.Amount); err != nil {
			return err
		}

		start := s.now().UTC()
		p := &domain.Plan{
			ID:        uuid.New(),
			UserID:    d.UserID,
			DepositID: d.ID,
			Category:  d.PlanID,
			Amount:    d.Amount,
			StartDate: start,
			EndDate:   start.Add(domain.PlanDuration),
			Status:    domain.PlanActive,
		}
		if err := s.plans.Create(ctx, p); err != nil {
			return err
		}

		ref, err := s.referrals.ActivateForReferred(ctx, d.UserID)
		if err != nil {
			return err
		}
		credited = 0
		if ref != nil {
			if credited, err = s.accountant.OnReferralActivated(ctx, ref.ReferrerID); err != nil {
				return err
			}
		}

		deposit, plan = d, p
		return nil
	})
	if err != nil {
		zap.L().Error("failed to approve deposit", zap.String("deposit", depositID.String()), zap.Error(err))
		return nil, nil, err
	}

	metrics.DepositTransitions.WithLabelValues(string(domain.DepositApproved)).Inc()
	if credited > 0 {
		metrics.TokensCredited.Add(float64(credited))
	}
	zap.L().Info("deposit approved",
		zap.String("deposit", deposit.ID.String()),
		zap.String("actor", actor.String()),
		zap.String("plan", plan.ID.String()))
	return deposit, plan, nil
}

func (s *Service) Reject(ctx context.Context, depositID, actor uuid.UUID) (*domain.Deposit, error) {
	if err := s.gate.Authorize(ctx, actor); err != nil {
		return nil, err
	}

	var deposit *domain.Deposit
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		d, err := s.lockPending(ctx, depositID)
		if err != nil {
			return err
		}
		if err := s.deposits.UpdateStatus(ctx, d.ID, domain.DepositPending, domain.DepositRejected); err != nil {
			return err
		}
		d.Status = domain.DepositRejected
		deposit = d
		return nil
	})
	if err != nil {
		zap.L().Error("failed to reject deposit", zap.String("deposit", depositID.String()), zap.Error(err))
		return nil, err
	}

	metrics.DepositTransitions.WithLabelValues(string(domain.DepositRejected)).Inc()
	return deposit, nil
}

func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error) {
	deposits, err := s.deposits.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}

func (s *Service) ListPlans(ctx context.Context, userID uuid.UUID) ([]domain.Plan, error) {
	plans, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch plans", zap.Error(err))
		return nil, err
	}
	return plans, nil
}

// List is the admin view over all deposits, optionally filtered by status.
func (s *Service) List(ctx context.Context, actor uuid.UUID, status domain.DepositStatus) ([]domain.Deposit, error) {
	if err := s.gate.Authorize(ctx, actor); err != nil {
		return nil, err
	}
	deposits, err := s.deposits.List(ctx, status)
	if err != nil {
		zap.L().Error("failed to list deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}
