package repo

import (
	"github.com/GlebRadaev/investledger/internal/pg"
	depositrepo "github.com/GlebRadaev/investledger/internal/repo/deposit-repo"
	planrepo "github.com/GlebRadaev/investledger/internal/repo/plan-repo"
	profilerepo "github.com/GlebRadaev/investledger/internal/repo/profile-repo"
	referralrepo "github.com/GlebRadaev/investledger/internal/repo/referral-repo"
	tokenrepo "github.com/GlebRadaev/investledger/internal/repo/token-repo"
	withdrawalrepo "github.com/GlebRadaev/investledger/internal/repo/withdrawal-repo"
)

type Repositories struct {
	ProfileRepo    *profilerepo.Repository
	DepositRepo    *depositrepo.Repository
	PlanRepo       *planrepo.Repository
	TokenRepo      *tokenrepo.Repository
	ReferralRepo   *referralrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
}

// New builds every repository over conn. Pass a *pg.DB so calls join the transaction in the context.
func New(conn pg.Database) *Repositories {
	return &Repositories{
		ProfileRepo:    profilerepo.New(conn),
		DepositRepo:    depositrepo.New(conn),
		PlanRepo:       planrepo.New(conn),
		TokenRepo:      tokenrepo.New(conn),
		ReferralRepo:   referralrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
	}
}
