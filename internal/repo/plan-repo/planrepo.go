package planrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/pg"
)

const columns = `id, user_id, deposit_id, category, amount, start_date, end_date, status`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.Plan, error) {
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		var p domain.Plan
		err := rows.Scan(&p.ID, &p.UserID, &p.DepositID, &p.Category, &p.Amount, &p.StartDate, &p.EndDate, &p.Status)
		if err != nil {
			zap.L().Error("can't scan plan row", zap.Error(err))
			return nil, pg.WrapError(err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.WrapError(err)
	}
	return plans, nil
}

// Create inserts the plan materialized by an approved deposit. A second plan for the same
// deposit violates plans_deposit_id_key and is reported as ErrAlreadyExists.
func (r *Repository) Create(ctx context.Context, plan *domain.Plan) error {
	query := `
		INSERT INTO plans (id, user_id, deposit_id, category, amount, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, plan.ID, plan.UserID, plan.DepositID, plan.Category, plan.Amount, plan.StartDate, plan.EndDate, plan.Status)
	if err != nil {
		zap.L().Error("can't save plan", zap.Error(err))
		return pg.WrapError(err)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plan, error) {
	query := `SELECT ` + columns + ` FROM plans WHERE user_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get plans", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	return r.collect(rows)
}

// FindMatured returns active plans whose end date is not after now, oldest first.
func (r *Repository) FindMatured(ctx context.Context, now time.Time, limit uint32) ([]domain.Plan, error) {
	query := `
		SELECT ` + columns + `
		FROM plans
		WHERE status = 'active' AND end_date <= $1
		ORDER BY end_date ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't get matured plans", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	return r.collect(rows)
}

// Complete marks an active plan completed and reports whether this call changed it.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE plans SET status = 'completed' WHERE id = $1 AND status = 'active'`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't complete plan", zap.Error(err))
		return false, pg.WrapError(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM plans WHERE status = 'active'`).Scan(&count); err != nil {
		zap.L().Error("can't count active plans", zap.Error(err))
		return 0, pg.WrapError(err)
	}
	return count, nil
}
