package tokenrepo

import (
	"context"
	"errors"
	"fmt"

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

func (r *Repository) get(ctx context.Context, query string, userID uuid.UUID) (*domain.Token, error) {
	var token domain.Token
	err := r.db.QueryRow(ctx, query, userID).Scan(&token.UserID, &token.Amount, &token.ReferralPairs, &token.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get token balance", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	return &token, nil
}

func (r *Repository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.Token, error) {
	return r.get(ctx, `SELECT user_id, amount, referral_pairs, updated_at FROM tokens WHERE user_id = $1`, userID)
}

// LockForUser reads the token row and holds its lock until the surrounding transaction ends.
func (r *Repository) LockForUser(ctx context.Context, userID uuid.UUID) (*domain.Token, error) {
	return r.get(ctx, `SELECT user_id, amount, referral_pairs, updated_at FROM tokens WHERE user_id = $1 FOR UPDATE`, userID)
}

// Ensure creates an empty token row for the user unless one already exists.
func (r *Repository) Ensure(ctx context.Context, userID uuid.UUID) error {
	query := `INSERT INTO tokens (user_id, amount, referral_pairs) VALUES ($1, 0, 0) ON CONFLICT (user_id) DO NOTHING`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("can't create token row", zap.Error(err))
		return pg.WrapError(err)
	}
	return nil
}

// ApplyReferralPairs raises referral_pairs to pairs and credits the difference to amount. It
// reports false when the row already accounts for that many pairs.
func (r *Repository) ApplyReferralPairs(ctx context.Context, userID uuid.UUID, pairs int64) (bool, error) {
	query := `
		UPDATE tokens
		SET amount = amount + ($2 - referral_pairs), referral_pairs = $2, updated_at = NOW()
		WHERE user_id = $1 AND referral_pairs < $2
	`
	tag, err := r.db.Exec(ctx, query, userID, pairs)
	if err != nil {
		zap.L().Error("can't credit referral tokens", zap.Error(err))
		return false, pg.WrapError(err)
	}
	return tag.RowsAffected() == 1, nil
}

// DecrementOne removes exactly one token. It fails with ErrInsufficientTokens and changes nothing
// when the balance is already zero.
func (r *Repository) DecrementOne(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE tokens SET amount = amount - 1, updated_at = NOW() WHERE user_id = $1 AND amount >= 1`
	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't debit token", zap.Error(err))
		return pg.WrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, domain.ErrInsufficientTokens)
	}
	return nil
}
