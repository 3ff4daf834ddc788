package service

import (
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/internal/repo"
	"github.com/GlebRadaev/investledger/internal/service/authzservice"
	"github.com/GlebRadaev/investledger/internal/service/depositservice"
	"github.com/GlebRadaev/investledger/internal/service/profileservice"
	"github.com/GlebRadaev/investledger/internal/service/referralservice"
	"github.com/GlebRadaev/investledger/internal/service/statsservice"
	"github.com/GlebRadaev/investledger/internal/service/withdrawalservice"
)

type Services struct {
	AuthzService      *authzservice.Service
	ProfileService    *profileservice.Service
	ReferralService   *referralservice.Service
	DepositService    *depositservice.Service
	WithdrawalService *withdrawalservice.Service
	StatsService      *statsservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, isBootstrapAdmin func(id string) bool) *Services {
	authzService := authzservice.New(repo.ProfileRepo)
	referralService := referralservice.New(txManager, repo.TokenRepo, repo.ReferralRepo)

	return &Services{
		AuthzService:    authzService,
		ReferralService: referralService,
		ProfileService: profileservice.New(
			txManager, repo.ProfileRepo, repo.TokenRepo, repo.ReferralRepo, authzService, isBootstrapAdmin,
		),
		DepositService: depositservice.New(
			txManager, repo.DepositRepo, repo.PlanRepo, repo.ProfileRepo, repo.ReferralRepo, referralService, authzService,
		),
		WithdrawalService: withdrawalservice.New(
			txManager, repo.WithdrawalRepo, repo.TokenRepo, repo.ProfileRepo, authzService,
		),
		StatsService: statsservice.New(
			repo.ProfileRepo, repo.DepositRepo, repo.WithdrawalRepo, repo.PlanRepo, authzService,
		),
	}
}
