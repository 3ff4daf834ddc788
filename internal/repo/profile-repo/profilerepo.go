package profilerepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
)

const columns = `id, full_name, email, binance_wallet, invested_amount, referral_code, is_admin, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.BinanceWallet, &p.InvestedAmount, &p.ReferralCode, &p.IsAdmin, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, full_name, email, referral_code, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING invested_amount, created_at
	`
	err := r.db.QueryRow(ctx, query, profile.ID, profile.FullName, profile.Email, profile.ReferralCode, profile.IsAdmin).
		Scan(&profile.InvestedAmount, &profile.CreatedAt)
	if err != nil {
		zap.L().Error("can't save profile", zap.Error(err))
		return pg.WrapError(err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + columns + ` FROM profiles WHERE id = $1`
	profile, err := scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find profile", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	return profile, nil
}

func (r *Repository) GetByReferralCode(ctx context.Context, code string) (*domain.Profile, error) {
	query := `SELECT ` + columns + ` FROM profiles WHERE referral_code = $1`
	profile, err := scan(r.db.QueryRow(ctx, query, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find profile by referral code", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	return profile, nil
}

// UpdateWallet stores the payout address; nil clears it.
func (r *Repository) UpdateWallet(ctx context.Context, id uuid.UUID, wallet *string) error {
	query := `UPDATE profiles SET binance_wallet = $2 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, wallet)
	if err != nil {
		zap.L().Error("can't update wallet", zap.Error(err))
		return pg.WrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) SetAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) error {
	query := `UPDATE profiles SET is_admin = $2 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, isAdmin)
	if err != nil {
		zap.L().Error("can't update admin flag", zap.Error(err))
		return pg.WrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) AddInvested(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	query := `UPDATE profiles SET invested_amount = invested_amount + $2 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		zap.L().Error("can't add invested amount", zap.Error(err))
		return pg.WrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT ` + columns + ` FROM profiles ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list profiles", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		profile, err := scan(rows)
		if err != nil {
			zap.L().Error("can't scan profile row", zap.Error(err))
			return nil, pg.WrapError(err)
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.WrapError(err)
	}
	return profiles, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		zap.L().Error("can't count profiles", zap.Error(err))
		return 0, pg.WrapError(err)
	}
	return count, nil
}
