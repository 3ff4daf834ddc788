package depositrepo

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

const columns = `id, user_id, amount, plan_id, status, payment_proof, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.Deposit, error) {
	var d domain.Deposit
	if err := row.Scan(&d.ID, &d.UserID, &d.Amount, &d.PlanID, &d.Status, &d.PaymentProof, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.Deposit, error) {
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		d, err := scan(rows)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, pg.WrapError(err)
		}
		deposits = append(deposits, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, pg.WrapError(err)
	}
	return deposits, nil
}

func (r *Repository) Create(ctx context.Context, deposit *domain.Deposit) error {
	query := `
		INSERT INTO deposits (id, user_id, amount, plan_id, status, payment_proof)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query, deposit.ID, deposit.UserID, deposit.Amount, deposit.PlanID, deposit.Status, deposit.PaymentProof).
		Scan(&deposit.CreatedAt)
	if err != nil {
		zap.L().Error("can't save deposit", zap.Error(err))
		return pg.WrapError(err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deposit, error) {
	return r.get(ctx, `SELECT `+columns+` FROM deposits WHERE id = $1`, id)
}

// GetForUpdate reads the deposit and locks its row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Deposit, error) {
	return r.get(ctx, `SELECT `+columns+` FROM deposits WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Deposit, error) {
	deposit, err := scan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find deposit", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	return deposit, nil
}

// UpdateStatus moves the deposit from one status to another. It fails with ErrConflict when the
// row is no longer in the expected status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.DepositStatus) error {
	query := `UPDATE deposits SET status = $3 WHERE id = $1 AND status = $2`
	tag, err := r.db.Exec(ctx, query, id, from, to)
	if err != nil {
		zap.L().Error("can't update deposit status", zap.Error(err))
		return pg.WrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deposit %s is not %s: %w", id, from, domain.ErrConflict)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Deposit, error) {
	query := `SELECT ` + columns + ` FROM deposits WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get deposits", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	return r.collect(rows)
}

// List returns all deposits, newest first. An empty status returns every status.
func (r *Repository) List(ctx context.Context, status domain.DepositStatus) ([]domain.Deposit, error) {
	query := `SELECT ` + columns + ` FROM deposits WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		zap.L().Error("can't list deposits", zap.Error(err))
		return nil, pg.WrapError(err)
	}
	return r.collect(rows)
}

func (r *Repository) SumApproved(ctx context.Context) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM deposits WHERE status = 'approved'`
	if err := r.db.QueryRow(ctx, query).Scan(&sum); err != nil {
		zap.L().Error("can't sum approved deposits", zap.Error(err))
		return decimal.Zero, pg.WrapError(err)
	}
	return sum, nil
}

func (r *Repository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM deposits WHERE status = 'pending'`
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		zap.L().Error("can't count pending deposits", zap.Error(err))
		return 0, pg.WrapError(err)
	}
	return count, nil
}
