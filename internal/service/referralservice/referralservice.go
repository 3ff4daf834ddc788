//go:generate mockgen -source=referralservice.go -destination=mock_referralservice.go -package=referralservice
package referralservice

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
)

type TokenRepo interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Token, error)
	Ensure(ctx context.Context, userID uuid.UUID) error
	LockForUser(ctx context.Context, userID uuid.UUID) (*domain.Token, error)
	ApplyReferralPairs(ctx context.Context, userID uuid.UUID, pairs int64) (bool, error)
}

type ReferralRepo interface {
	CountActive(ctx context.Context, referrerID uuid.UUID) (int64, error)
	ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]domain.Referral, error)
}

// Service turns active referrals into tokens: one token for every two active referrals.
type Service struct {
	txManager    pg.TXManager
	tokenRepo    TokenRepo
	referralRepo ReferralRepo
}

func New(txManager pg.TXManager, tokenRepo TokenRepo, referralRepo ReferralRepo) *Service {
	return &Service{
		txManager:    txManager,
		tokenRepo:    tokenRepo,
		referralRepo: referralRepo,
	}
}

// OnReferralActivated reconciles the referrer's token balance with the number of completed
// referral pairs and returns how many tokens this call credited. The credit is derived from the
// active referral count, so replaying an activation credits nothing.
//
// Called with a transaction in ctx it joins that transaction.
func (s *Service) OnReferralActivated(ctx context.Context, referrerID uuid.UUID) (int64, error) {
	var credited int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.tokenRepo.Ensure(ctx, referrerID); err != nil {
			return err
		}
		token, err := s.tokenRepo.LockForUser(ctx, referrerID)
		if err != nil {
			return err
		}
		if token == nil {
			return domain.ErrNotFound
		}

		active, err := s.referralRepo.CountActive(ctx, referrerID)
		if err != nil {
			return err
		}
		pairs := active / 2
		if pairs <= token.ReferralPairs {
			return nil
		}

		applied, err := s.tokenRepo.ApplyReferralPairs(ctx, referrerID, pairs)
		if err != nil {
			return err
		}
		if applied {
			credited = pairs - token.ReferralPairs
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to credit referral tokens", zap.String("referrer", referrerID.String()), zap.Error(err))
		return 0, err
	}

	if credited > 0 {
		zap.L().Info("referral tokens credited",
			zap.String("referrer", referrerID.String()),
			zap.Int64("tokens", credited))
	}
	return credited, nil
}

func (s *Service) ListReferrals(ctx context.Context, referrerID uuid.UUID) ([]domain.Referral, error) {
	referrals, err := s.referralRepo.ListByReferrer(ctx, referrerID)
	if err != nil {
		zap.L().Error("failed to fetch referrals", zap.Error(err))
		return nil, err
	}
	return referrals, nil
}

// TokenBalance returns the user's token amount; users without a token row hold zero.
func (s *Service) TokenBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	token, err := s.tokenRepo.GetByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get token balance", zap.Error(err))
		return 0, err
	}
	if token == nil {
		return 0, nil
	}
	return token.Amount, nil
}
