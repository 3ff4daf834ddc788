//go:generate mockgen -source=profileservice.go -destination=mock_profileservice.go -package=profileservice
package profileservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/pkg/validate"
)

type ProfileRepo interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.Profile, error)
	UpdateWallet(ctx context.Context, id uuid.UUID, wallet *string) error
	SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error
	List(ctx context.Context) ([]domain.Profile, error)
}

type TokenRepo interface {
	Ensure(ctx context.Context, userID uuid.UUID) error
}

type ReferralRepo interface {
	Create(ctx context.Context, referral *domain.Referral) error
}

type Gate interface {
	Authorize(ctx context.Context, actor uuid.UUID) error
}

type Service struct {
	txManager        pg.TXManager
	profiles         ProfileRepo
	tokens           TokenRepo
	referrals        ReferralRepo
	gate             Gate
	isBootstrapAdmin func(id string) bool
	newCode          func() string
}

func New(
	txManager pg.TXManager,
	profiles ProfileRepo,
	tokens TokenRepo,
	referrals ReferralRepo,
	gate Gate,
	isBootstrapAdmin func(id string) bool,
) *Service {
	return &Service{
		txManager:        txManager,
		profiles:         profiles,
		tokens:           tokens,
		referrals:        referrals,
		gate:             gate,
		isBootstrapAdmin: isBootstrapAdmin,
		newCode:          validate.NewReferralCode,
	}
}

// Create registers the profile of an identity-provider user together with an empty token row
// and, when referralCode names another profile, a pending referral.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, fullName, email, referralCode string) (*domain.Profile, error) {
	existing, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("profile %s: %w", userID, domain.ErrAlreadyExists)
	}

	var referrer *domain.Profile
	if code := strings.TrimSpace(referralCode); code != "" {
		if !validate.IsReferralCode(code) {
			return nil, domain.ErrInvalidReferralCode
		}
		referrer, err = s.profiles.GetByReferralCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if referrer == nil {
			return nil, domain.ErrInvalidReferralCode
		}
	}

	profile := &domain.Profile{
		ID:           userID,
		FullName:     strings.TrimSpace(fullName),
		Email:        strings.TrimSpace(email),
		ReferralCode: s.newCode(),
		IsAdmin:      s.isBootstrapAdmin != nil && s.isBootstrapAdmin(userID.String()),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.profiles.Create(ctx, profile); err != nil {
			return err
		}
		if err := s.tokens.Ensure(ctx, userID); err != nil {
			return err
		}
		if referrer == nil {
			return nil
		}
		return s.referrals.Create(ctx, &domain.Referral{
			ID:         uuid.New(),
			ReferrerID: referrer.ID,
			ReferredID: userID,
			Status:     domain.ReferralPending,
		})
	})
	if err != nil {
		zap.L().Error("failed to create profile", zap.String("user", userID.String()), zap.Error(err))
		return nil, err
	}

	zap.L().Info("profile created", zap.String("user", userID.String()), zap.Bool("admin", profile.IsAdmin))
	return profile, nil
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s: %w", userID, domain.ErrNotFound)
	}
	return profile, nil
}

// UpdateWallet sets the payout address. A blank wallet clears it.
func (s *Service) UpdateWallet(ctx context.Context, userID uuid.UUID, wallet string) error {
	var value *string
	if w := strings.TrimSpace(wallet); w != "" {
		value = &w
	}
	if err := s.profiles.UpdateWallet(ctx, userID, value); err != nil {
		zap.L().Error("failed to update wallet", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) SetAdmin(ctx context.Context, actor, target uuid.UUID, isAdmin bool) error {
	if err := s.gate.Authorize(ctx, actor); err != nil {
		return err
	}
	if err := s.profiles.SetAdmin(ctx, target, isAdmin); err != nil {
		zap.L().Error("failed to set admin flag", zap.Error(err))
		return err
	}
	zap.L().Info("admin flag changed",
		zap.String("actor", actor.String()),
		zap.String("target", target.String()),
		zap.Bool("admin", isAdmin))
	return nil
}

func (s *Service) List(ctx context.Context, actor uuid.UUID) ([]domain.Profile, error) {
	if err := s.gate.Authorize(ctx, actor); err != nil {
		return nil, err
	}
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		zap.L().Error("failed to list profiles", zap.Error(err))
		return nil, err
	}
	return profiles, nil
}
