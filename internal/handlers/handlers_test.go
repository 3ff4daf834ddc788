package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/internal/proofstore"
	"github.com/GlebRadaev/investledger/internal/repo"
	"github.com/GlebRadaev/investledger/internal/service"
	"github.com/GlebRadaev/investledger/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	services := service.New(repo.New(pg.New(mockDB)), pg.NewMockTXManager(ctrl), func(string) bool { return false })
	h := New(services, proofstore.NewMockStore(ctrl), auth.NewJWTService("secret", "investledger"), time.Second)

	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.ProfileHandler)
	assert.NotNil(t, h.DepositHandler)
	assert.NotNil(t, h.WithdrawalHandler)
	assert.NotNil(t, h.AdminHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockProfileHandler := NewMockProfileHandler(ctrl)
	mockDepositHandler := NewMockDepositHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockProfileHandler.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().GetProfile(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().UpdateWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfileHandler.EXPECT().GetReferrals(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().SubmitDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().GetDeposits(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().GetPlans(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().SubmitWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetStats(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetDeposits(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().ApproveDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().RejectDeposit(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetWithdrawals(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().CompleteWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().RejectWithdrawal(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().GetProfiles(gomock.Any(), gomock.Any()).AnyTimes()
	mockAdminHandler.EXPECT().SetAdmin(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("secret", "investledger")
	token, err := jwtService.GenerateJWT(uuid.New(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	h := &Handlers{
		ProfileHandler:    mockProfileHandler,
		DepositHandler:    mockDepositHandler,
		WithdrawalHandler: mockWithdrawalHandler,
		AdminHandler:      mockAdminHandler,
		validator:         jwtService,
		timeout:           time.Second,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	id := uuid.NewString()
	routes := []struct {
		method string
		url    string
	}{
		{"POST", "/api/profile"},
		{"GET", "/api/profile"},
		{"PUT", "/api/profile/wallet"},
		{"GET", "/api/profile/referrals"},
		{"POST", "/api/deposits"},
		{"GET", "/api/deposits"},
		{"GET", "/api/plans"},
		{"POST", "/api/withdrawals"},
		{"GET", "/api/withdrawals"},
		{"GET", "/api/admin/stats"},
		{"GET", "/api/admin/deposits"},
		{"POST", "/api/admin/deposits/" + id + "/approve"},
		{"POST", "/api/admin/deposits/" + id + "/reject"},
		{"GET", "/api/admin/withdrawals"},
		{"POST", "/api/admin/withdrawals/" + id + "/complete"},
		{"POST", "/api/admin/withdrawals/" + id + "/reject"},
		{"GET", "/api/admin/profiles"},
		{"PUT", "/api/admin/profiles/" + id + "/admin"},
	}

	for _, tt := range routes {
		t.Run("anonymous "+tt.method+" "+tt.url, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.url, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
		t.Run("bearer "+tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "investledger_http_requests_total")
	})

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
