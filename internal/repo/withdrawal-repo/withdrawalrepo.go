package withdrawalrepo

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

const columns = `id, user_id, amount, status, created_at, processed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.Withdrawal, error) {
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var wd domain.Withdrawal
		err := rows.Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.Status, &wd.CreatedAt, &wd.ProcessedAt)
		if err != nil {
			zap.L().Error("failed to scan withdrawal row", zap.Error(err))
			return nil, pg.WrapError(err)
		}
		withdrawals = append(withdrawals, wd)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.WrapError(err)
	}
	return withdrawals, nil
}

func (r *Repository) Create(ctx context.Context, withdrawal *domain.Withdrawal) error {
	query := `
		INSERT INTO withdrawals (id, user_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, withdrawal.ID, withdrawal.UserID, withdrawal.Amount, withdrawal.Status).
		Scan(&withdrawal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal", zap.Error(err))
		return pg.WrapError(err)
	}
	return nil
}

// GetForUpdate reads the withdrawal and locks its row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	query := `SELECT ` + columns + ` FROM withdrawals WHERE id = $1 FOR UPDATE`
	var wd domain.Withdrawal
	err := r.db.QueryRow(ctx, query, id).Scan(&wd.ID, &wd.UserID, &wd.Amount, &wd.Status, &wd.CreatedAt, &wd.ProcessedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to fetch withdrawal", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	return &wd, nil
}

// UpdateStatus moves a withdrawal out of from and stamps processed_at. It fails with
// ErrConflict when the row is no longer in from.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.WithdrawalStatus) error {
	query := `UPDATE withdrawals SET status = $3, processed_at = NOW() WHERE id = $1 AND status = $2`
	tag, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		zap.L().Error("failed to update withdrawal status", zap.Error(err))
		return pg.WrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal %s is not %s: %w", id, from, domain.ErrConflict)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + columns + `
        FROM withdrawals
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	return r.collect(rows)
}

// List returns all withdrawals, newest first. An empty status returns every status.
func (r *Repository) List(ctx context.Context, status domain.WithdrawalStatus) ([]domain.Withdrawal, error) {
	query := `
        SELECT ` + columns + `
        FROM withdrawals
        WHERE ($1 = '' OR status = $1)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		zap.L().Error("failed to list withdrawals", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	return r.collect(rows)
}

func (r *Repository) SumCompleted(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM withdrawals WHERE status = 'completed'`
	if err := r.db.QueryRow(ctx, query).Scan(&sum); err != nil {
		zap.L().Error("failed to sum completed withdrawals", zap.Error(err))
		return decimal.Zero, pg.WrapError(err)
	}
	return sum, nil
}

func (r *Repository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM withdrawals WHERE status = 'pending'`
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("failed to count pending withdrawals", zap.Error(err))
		return 0, pg.WrapError(err)
	}
	return count, nil
}
