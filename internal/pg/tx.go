//go:generate mockgen -source=tx.go -destination=mock_tx.go -package=pg
package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TransactionalFn func(ctx context.Context) error

// TXManager runs fn inside one database transaction. Calls made with a context that already
// carries a transaction join it instead of opening a new one.
type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
}

type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type TxManager struct {
	db Beginner
}

func NewTXManager(db Beginner) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) Begin(ctx context.Context, fn TransactionalFn) (err error) {
	if _, ok := TxFromContext(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		zap.L().Error("can't begin transaction", zap.Error(err))
		return WrapError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			zap.L().Error("can't rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		zap.L().Error("can't commit transaction", zap.Error(err))
		return WrapError(err)
	}
	return nil
}
