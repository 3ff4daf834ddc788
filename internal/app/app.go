package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/config"
	"github.com/GlebRadaev/investledger/internal/handlers"
	"github.com/GlebRadaev/investledger/internal/maturity"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/internal/proofstore"
	"github.com/GlebRadaev/investledger/internal/repo"
	"github.com/GlebRadaev/investledger/internal/service"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	maturity *maturity.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.WithConflictRetry(pg.NewTXManager(pool), cfg.ConflictRetries)

	store, err := proofstore.New(cfg)
	if err != nil {
		zap.L().Error("proof storage setup failed: ", zap.Error(err))
		return fmt.Errorf("can't set up proof storage: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, cfg.IsBootstrapAdmin)
	a.api = handlers.New(a.srv, store, auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer), cfg.StoreTimeout)
	a.maturity = maturity.New(cfg, a.repo.PlanRepo)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if err = a.startMaturityWorker(ctx); err != nil {
		return fmt.Errorf("can't start maturity worker: %w", err)
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		pool.Close()
	}()

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()
	if err = dbpool.Ping(pingCtx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startMaturityWorker(ctx context.Context) error {
	return a.maturity.Start(ctx)
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
