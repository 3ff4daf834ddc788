//go:generate mockgen -source=authzservice.go -destination=mock_authzservice.go -package=authzservice
package authzservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
)

type Repo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// Service is the single capability check in front of every privileged operation.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// IsAuthorized reports whether actor holds the admin capability. Unknown actors are not authorized.
func (s *Service) IsAuthorized(ctx context.Context, actor uuid.UUID) (bool, error) {
	profile, err := s.repo.GetByID(ctx, actor)
	if err != nil {
		zap.L().Error("failed to load actor profile", zap.String("actor", actor.String()), zap.Error(err))
		return false, err
	}
	return profile != nil && profile.IsAdmin, nil
}

func (s *Service) Authorize(ctx context.Context, actor uuid.UUID) error {
	ok, err := s.IsAuthorized(ctx, actor)
	if err != nil {
		return err
	}
	if !ok {
		zap.L().Warn("privileged operation refused", zap.String("actor", actor.String()))
		return fmt.Errorf("actor %s: %w", actor, domain.ErrForbidden)
	}
	return nil
}
