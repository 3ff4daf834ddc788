package pg

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GlebRadaev/investledger/internal/domain"
)

const (
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeNumericOutOfRange    = "22003"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// WrapError maps a driver error onto the ledger error kinds. Rejected values are terminal;
// anything unclassified is reported as ErrStoreUnavailable so the caller treats it as retryable.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrStoreUnavailable) ||
		errors.Is(err, domain.ErrAlreadyExists) || errors.Is(err, domain.ErrInvalidAmount) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.Message)
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, pgErr.ConstraintName)
		case codeNumericOutOfRange, codeCheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, pgErr.Message)
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}
