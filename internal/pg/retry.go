package pg

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/domain"
	"github.com/GlebRadaev/investledger/internal/metrics"
)

const retryBase = 10 * time.Millisecond

// RetryTXManager reruns the whole transaction when it fails with domain.ErrConflict.
type RetryTXManager struct {
	next       TXManager
	maxRetries uint64
	base       time.Duration
}

func WithConflictRetry(next TXManager, maxRetries uint64) *RetryTXManager {
	return &RetryTXManager{
		next:       next,
		maxRetries: maxRetries,
		base:       retryBase,
	}
}

func (m *RetryTXManager) Begin(ctx context.Context, fn TransactionalFn) error {
	// an enclosing transaction owns the retry
	if _, ok := TxFromContext(ctx); ok {
		return m.next.Begin(ctx, fn)
	}

	backoff := retry.WithMaxRetries(m.maxRetries, retry.NewExponential(m.base))
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := m.next.Begin(ctx, fn)
		if errors.Is(err, domain.ErrConflict) {
			metrics.ConflictRetries.Inc()
			zap.L().Debug("transaction conflict, retrying", zap.Int("attempt", attempt), zap.Error(err))
			return retry.RetryableError(err)
		}
		return err
	})
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return WrapError(err)
	}
	return err
}
