//go:generate mockgen -source=withdrawalservice.go -destination=mock_withdrawalservice.go -package=withdrawalservice
package withdrawalservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/metrics"
	"github.com/GlebRadaev/investledger/internal/pg"
)

type WithdrawalRepo interface {
	Create(ctx context.Context, withdrawal *domain.Withdrawal) error
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.WithdrawalStatus) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error)
	List(ctx context.Context, status domain.WithdrawalStatus) ([]domain.Withdrawal, error)
}

type TokenRepo interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Token, error)
	DecrementOne(ctx context.Context, userID uuid.UUID) error
}

type ProfileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type Gate interface {
	Authorize(ctx context.Context, actor uuid.UUID) error
}

type Service struct {
	txManager   pg.TXManager
	withdrawals WithdrawalRepo
	tokens      TokenRepo
	profiles    ProfileRepo
	gate        Gate
}

func New(txManager pg.TXManager, withdrawals WithdrawalRepo, tokens TokenRepo, profiles ProfileRepo, gate Gate) *Service {
	return &Service{
		txManager:   txManager,
		withdrawals: withdrawals,
		tokens:      tokens,
		profiles:    profiles,
		gate:        gate,
	}
}

// Submit records a pending withdrawal request. Checks run in order amount, profile, wallet, tokens,
// so a caller without a wallet sees WalletNotConfigured even with no tokens. Tokens are only
// checked here; the debit happens on completion.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Withdrawal, error) {
	if !amount.IsPositive() || !domain.AmountFits(amount) {
		return nil, fmt.Errorf("withdrawal amount %s: %w", amount, domain.ErrInvalidAmount)
	}

	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s: %w", userID, domain.ErrNotFound)
	}
	if !profile.HasWallet() {
		return nil, domain.ErrWalletNotConfigured
	}

	token, err := s.tokens.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if token == nil || token.Amount < 1 {
		return nil, domain.ErrInsufficientTokens
	}

	withdrawal := &domain.Withdrawal{
		ID:     uuid.New(),
		UserID: userID,
		Amount: amount,
		Status: domain.WithdrawalPending,
	}
	if err := s.withdrawals.Create(ctx, withdrawal); err != nil {
		zap.L().Error("failed to create withdrawal", zap.Error(err))
		return nil, err
	}
	metrics.WithdrawalTransitions.WithLabelValues(string(domain.WithdrawalPending)).Inc()
	return withdrawal, nil
}

func (s *Service) lockPending(ctx context.Context, withdrawalID uuid.UUID) (*domain.Withdrawal, error) {
	wd, err := s.withdrawals.GetForUpdate(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if wd == nil {
		return nil, fmt.Errorf("withdrawal %s: %w", withdrawalID, domain.ErrNotFound)
	}
	if wd.Status != domain.WithdrawalPending {
		return nil, fmt.Errorf("withdrawal %s is %s: %w", withdrawalID, wd.Status, domain.ErrInvalidStateTransition)
	}
	return wd, nil
}

// Complete debits one token and marks the withdrawal completed in one transaction. Without a token
// to debit it fails with ErrInsufficientTokens and the withdrawal stays pending.
func (s *Service) Complete(ctx context.Context, withdrawalID, actor uuid.UUID) (*domain.Withdrawal, error) {
	if err := s.gate.Authorize(ctx, actor); err != nil {
		return nil, err
	}

	var withdrawal *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wd, err := s.lockPending(ctx, withdrawalID)
		if err != nil {
			return err
		}
		if err := s.tokens.DecrementOne(ctx, wd.UserID); err != nil {
			return err
		}
		if err := s.withdrawals.UpdateStatus(ctx, wd.ID, domain.WithdrawalPending, domain.WithdrawalCompleted); err != nil {
			return err
		}
		wd.Status = domain.WithdrawalCompleted
		withdrawal = wd
		return nil
	})
	if err != nil {
		zap.L().Error("failed to complete withdrawal", zap.String("withdrawal", withdrawalID.String()), zap.Error(err))
		return nil, err
	}

	metrics.WithdrawalTransitions.WithLabelValues(string(domain.WithdrawalCompleted)).Inc()
	zap.L().Info("withdrawal completed",
		zap.String("withdrawal", withdrawal.ID.String()),
		zap.String("actor", actor.String()))
	return withdrawal, nil
}

func (s *Service) Reject(ctx context.Context, withdrawalID, actor uuid.UUID) (*domain.Withdrawal, error) {
	if err := s.gate.Authorize(ctx, actor); err != nil {
		return nil, err
	}

	var withdrawal *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		wd, err := s.lockPending(ctx, withdrawalID)
		if err != nil {
			return err
		}
		if err := s.withdrawals.UpdateStatus(ctx, wd.ID, domain.WithdrawalPending, domain.WithdrawalRejected); err != nil {
			return err
		}
		wd.Status = domain.WithdrawalRejected
		withdrawal = wd
		return nil
	})
	if err != nil {
		zap.L().Error("failed to reject withdrawal", zap.String("withdrawal", withdrawalID.String()), zap.Error(err))
		return nil, err
	}

	metrics.WithdrawalTransitions.WithLabelValues(string(domain.WithdrawalRejected)).Inc()
	return withdrawal, nil
}

func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error) {
	withdrawals, err := s.withdrawals.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) List(ctx context.Context, actor uuid.UUID, status domain.WithdrawalStatus) ([]domain.Withdrawal, error) {
	if err := s.gate.Authorize(ctx, actor); err != nil {
		return nil, err
	}
	withdrawals, err := s.withdrawals.List(ctx, status)
	if err != nil {
		zap.L().Error("failed to list withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
