package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService(testSecret, "investledger")
	userID := uuid.New()
	valid, _ := jwtService.GenerateJWT(userID, time.Now().Add(time.Hour))

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "Valid bearer", header: "Bearer " + valid, expectedCode: http.StatusOK},
		{name: "Missing header", expectedCode: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic " + valid, expectedCode: http.StatusUnauthorized},
		{name: "Broken token", header: "Bearer broken", expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = UserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			AuthMiddleware(jwtService)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, userID, seen)
			}
		})
	}
}
