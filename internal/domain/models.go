package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlanCategory string

const (
	CategoryCrypto   PlanCategory = "crypto"
	CategoryStock    PlanCategory = "stock"
	CategoryNFT      PlanCategory = "nft"
	CategoryMixed    PlanCategory = "mixed"
	CategoryPhysical PlanCategory = "physical"
)

// PlanDuration is the lifetime of a plan materialized by an approved deposit.
const PlanDuration = 30 * 24 * time.Hour

var minDeposits = map[PlanCategory]decimal.Decimal{
	CategoryCrypto:   decimal.NewFromInt(36),
	CategoryNFT:      decimal.NewFromInt(50),
	CategoryStock:    decimal.NewFromInt(100),
	CategoryMixed:    decimal.NewFromInt(200),
	CategoryPhysical: decimal.NewFromInt(500),
}

// MaxAmount is the largest value a NUMERIC(15,2) amount column holds.
var MaxAmount = decimal.RequireFromString("9999999999999.99")

// AmountFits reports whether amount can be stored without overflowing the amount columns.
func AmountFits(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(MaxAmount)
}

// MinDeposit returns the smallest amount a plan accepts and false for unknown categories.
func MinDeposit(c PlanCategory) (decimal.Decimal, bool) {
	minimum, ok := minDeposits[c]
	return minimum, ok
}

type DepositStatus string

const (
	DepositPending  DepositStatus = "pending"
	DepositApproved DepositStatus = "approved"
	DepositRejected DepositStatus = "rejected"
)

type PlanStatus string

const (
	PlanActive    PlanStatus = "active"
	PlanCompleted PlanStatus = "completed"
)

type ReferralStatus string

const (
	ReferralPending ReferralStatus = "pending"
	ReferralActive  ReferralStatus = "active"
)

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalCompleted WithdrawalStatus = "completed"
	WithdrawalRejected  WithdrawalStatus = "rejected"
)

type Profile struct {
	ID             uuid.UUID       `db:"id"`
	FullName       string          `db:"full_name"`
	Email          string          `db:"email"`
	BinanceWallet  *string         `db:"binance_wallet"`
	InvestedAmount decimal.Decimal `db:"invested_amount"`
	ReferralCode   string          `db:"referral_code"`
	IsAdmin        bool            `db:"is_admin"`
	CreatedAt      time.Time       `db:"created_at"`
}

// HasWallet reports whether a payout address is configured.
func (p *Profile) HasWallet() bool {
	return p.BinanceWallet != nil && *p.BinanceWallet != ""
}

type Deposit struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	Amount       decimal.Decimal `db:"amount"`
	PlanID       PlanCategory    `db:"plan_id"`
	Status       DepositStatus   `db:"status"`
	PaymentProof string          `db:"payment_proof"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Plan struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	DepositID uuid.UUID       `db:"deposit_id"`
	Category  PlanCategory    `db:"category"`
	Amount    decimal.Decimal `db:"amount"`
	StartDate time.Time       `db:"start_date"`
	EndDate   time.Time       `db:"end_date"`
	Status    PlanStatus      `db:"status"`
}

type Token struct {
	UserID        uuid.UUID `db:"user_id"`
	Amount        int64     `db:"amount"`
	ReferralPairs int64     `db:"referral_pairs"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Referral struct {
	ID          uuid.UUID      `db:"id"`
	ReferrerID  uuid.UUID      `db:"referrer_id"`
	ReferredID  uuid.UUID      `db:"referred_id"`
	Status      ReferralStatus `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	ActivatedAt *time.Time     `db:"activated_at"`
}

type Withdrawal struct {
	ID          uuid.UUID        `db:"id"`
	UserID      uuid.UUID        `db:"user_id"`
	Amount      decimal.Decimal  `db:"amount"`
	Status      WithdrawalStatus `db:"status"`
	CreatedAt   time.Time        `db:"created_at"`
	ProcessedAt *time.Time       `db:"processed_at"`
}

// Dashboard aggregates the figures shown on the admin overview.
type Dashboard struct {
	TotalProfiles      int64
	ApprovedDeposits   decimal.Decimal
	PendingDeposits    int64
	CompletedWithdrawn decimal.Decimal
	PendingWithdrawals int64
	ActivePlans        int64
}
