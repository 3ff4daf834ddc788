package domain

import "errors"

var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrMissingProof           = errors.New("payment proof is required")
	ErrNotFound               = errors.New("not found")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrForbidden              = errors.New("forbidden")
	ErrInsufficientTokens     = errors.New("insufficient tokens")
	ErrWalletNotConfigured    = errors.New("wallet not configured")
	ErrStoreUnavailable       = errors.New("store unavailable")
	ErrConflict               = errors.New("concurrent modification")

	ErrUnknownPlan         = errors.New("unknown plan")
	ErrInvalidReferralCode = errors.New("invalid referral code")
	ErrAlreadyExists       = errors.New("already exists")
)

// IsTransient reports whether the caller may retry the whole operation.
func IsTransient(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrConflict)
}
