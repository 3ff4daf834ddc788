//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/investledger/docs"
	adminhandlers "github.com/GlebRadaev/investledger/internal/handlers/admin"
	depositshandlers "github.com/GlebRadaev/investledger/internal/handlers/deposits"
	profilehandlers "github.com/GlebRadaev/investledger/internal/handlers/profile"
	withdrawalshandlers "github.com/GlebRadaev/investledger/internal/handlers/withdrawals"
	"github.com/GlebRadaev/investledger/internal/metrics"
	"github.com/GlebRadaev/investledger/internal/proofstore"
	"github.com/GlebRadaev/investledger/internal/service"
	"github.com/GlebRadaev/investledger/pkg/auth"
)

type ProfileHandler interface {
	CreateProfile(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateWallet(w http.ResponseWriter, r *http.Request)
	GetReferrals(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	SubmitDeposit(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
	GetPlans(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	SubmitWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
	ApproveDeposit(w http.ResponseWriter, r *http.Request)
	RejectDeposit(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	CompleteWithdrawal(w http.ResponseWriter, r *http.Request)
	RejectWithdrawal(w http.ResponseWriter, r *http.Request)
	GetProfiles(w http.ResponseWriter, r *http.Request)
	SetAdmin(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ProfileHandler    ProfileHandler
	DepositHandler    DepositHandler
	WithdrawalHandler WithdrawalHandler
	AdminHandler      AdminHandler

	validator auth.TokenValidator
	timeout   time.Duration
}

// New wires the HTTP handlers. timeout bounds every /api request; zero disables it.
func New(s *service.Services, store proofstore.Store, validator auth.TokenValidator, timeout time.Duration) *Handlers {
	return &Handlers{
		ProfileHandler:    profilehandlers.New(s.ProfileService, s.ReferralService),
		DepositHandler:    depositshandlers.New(s.DepositService, store),
		WithdrawalHandler: withdrawalshandlers.New(s.WithdrawalService),
		AdminHandler:      adminhandlers.New(s.DepositService, s.WithdrawalService, s.ProfileService, s.StatsService),
		validator:         validator,
		timeout:           timeout,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.InstrumentHandler,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		if h.timeout > 0 {
			r.Use(middleware.Timeout(h.timeout))
		}
		r.Use(auth.AuthMiddleware(h.validator))

		r.Route("/profile", func(r chi.Router) {
			r.Post("/", h.ProfileHandler.CreateProfile)
			r.Get("/", h.ProfileHandler.GetProfile)
			r.Put("/wallet", h.ProfileHandler.UpdateWallet)
			r.Get("/referrals", h.ProfileHandler.GetReferrals)
		})
		r.Route("/deposits", func(r chi.Router) {
			r.Post("/", h.DepositHandler.SubmitDeposit)
			r.Get("/", h.DepositHandler.GetDeposits)
		})
		r.Get("/plans", h.DepositHandler.GetPlans)
		r.Route("/withdrawals", func(r chi.Router) {
			r.Post("/", h.WithdrawalHandler.SubmitWithdrawal)
			r.Get("/", h.WithdrawalHandler.GetWithdrawals)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/stats", h.AdminHandler.GetStats)
			r.Route("/deposits", func(r chi.Router) {
				r.Get("/", h.AdminHandler.GetDeposits)
				r.Post("/{id}/approve", h.AdminHandler.ApproveDeposit)
				r.Post("/{id}/reject", h.AdminHandler.RejectDeposit)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", h.AdminHandler.GetWithdrawals)
				r.Post("/{id}/complete", h.AdminHandler.CompleteWithdrawal)
				r.Post("/{id}/reject", h.AdminHandler.RejectWithdrawal)
			})
			r.Route("/profiles", func(r chi.Router) {
				r.Get("/", h.AdminHandler.GetProfiles)
				r.Put("/{id}/admin", h.AdminHandler.SetAdmin)
			})
		})
	})

	return r
}
