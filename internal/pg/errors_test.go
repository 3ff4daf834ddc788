package pg

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/investledger/internal/domain"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"Serialization failure", &pgconn.PgError{Code: "40001"}, domain.ErrConflict},
		{"Deadlock", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "40P01"}), domain.ErrConflict},
		{"Lock not available", &pgconn.PgError{Code: "55P03"}, domain.ErrConflict},
		{"Unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "profiles_pkey"}, domain.ErrAlreadyExists},
		{"Check violation", &pgconn.PgError{Code: "23514", ConstraintName: "deposits_amount_check"}, domain.ErrInvalidAmount},
		{"Numeric overflow", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "22003", Message: "numeric field overflow"}), domain.ErrInvalidAmount},
		{"Deadline", context.DeadlineExceeded, domain.ErrStoreUnavailable},
		{"Plain error", errors.New("broken pipe"), domain.ErrStoreUnavailable},
		{"Already classified", domain.ErrConflict, domain.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, WrapError(tt.err), tt.expected)
		})
	}

	assert.NoError(t, WrapError(nil))
	assert.False(t, domain.IsTransient(WrapError(&pgconn.PgError{Code: "22003"})))
	assert.False(t, domain.IsTransient(WrapError(&pgconn.PgError{Code: "23514"})))
}
