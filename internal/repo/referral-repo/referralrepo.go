package referralrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, referral *domain.Referral) error {
	query := `
		INSERT INTO referrals (id, referrer_id, referred_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, referral.ID, referral.ReferrerID, referral.ReferredID, referral.Status).
		Scan(&referral.CreatedAt)
	if err != nil {
		zap.L().Error("can't save referral", zap.Error(err))
		return pg.WrapError(err)
	}
	return nil
}

// ActivateForReferred flips the pending referral of referredID to active and returns it.
// It returns nil when the user was not referred or the referral is already active.
func (r *Repository) ActivateForReferred(ctx context.Context, referredID uuid.UUID) (*domain.Referral, error) {
	query := `
		UPDATE referrals
		SET status = 'active', activated_at = NOW()
		WHERE referred_id = $1 AND status = 'pending'
		RETURNING id, referrer_id, referred_id, status, created_at, activated_at
	`
	var ref domain.Referral
	err := r.db.QueryRow(ctx, query, referredID).
		Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.Status, &ref.CreatedAt, &ref.ActivatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't activate referral", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	return &ref, nil
}

func (r *Repository) CountActive(ctx context.Context, referrerID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM referrals WHERE referrer_id = $1 AND status = 'active'`
	if err := r.db.QueryRow(ctx, query, referrerID).Scan(&count); err != nil {
		zap.L().Error("can't count active referrals", zap.Error(err))
		return 0, pg.WrapError(err)
	}
	return count, nil
}

func (r *Repository) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]domain.Referral, error) {
	query := `
		SELECT id, referrer_id, referred_id, status, created_at, activated_at
		FROM referrals
		WHERE referrer_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, referrerID)
	if err != nil {
		zap.L().Error("can't get referrals", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	defer rows.Close()

	var referrals []domain.Referral
	for rows.Next() {
		var ref domain.Referral
		if err := rows.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.Status, &ref.CreatedAt, &ref.ActivatedAt); err != nil {
			zap.L().Error("can't scan referral row", zap.Error(err))
			return nil, pg.WrapError(err)
		}
		referrals = append(referrals, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.WrapError(err)
	}
	return referrals, nil
}
