package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret, "investledger")

	tests := []struct {
		name           string
		userID         uuid.UUID
		expirationTime time.Time
	}{
		{
			name:           "Valid Token",
			userID:         uuid.New(),
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Expired Token",
			userID:         uuid.New(),
			expirationTime: time.Now().Add(-time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.expirationTime)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret, "investledger")
	userID := uuid.New()

	sign := func(claims jwt.Claims, secret string) string {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		return token
	}

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError error
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(userID, time.Now().Add(time.Hour))
				return token
			},
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: ErrInvalidToken,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(userID, time.Now().Add(-time.Hour))
				return token
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Foreign secret",
			setup: func() string {
				return sign(Claims{
					UserID:         userID.String(),
					StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: "investledger"},
				}, "other-secret")
			},
			expectError: ErrInvalidToken,
		},
		{
			name: "Wrong issuer",
			setup: func() string {
				return sign(Claims{
					UserID:         userID.String(),
					StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: "someone-else"},
				}, testSecret)
			},
			expectError: ErrInvalidClaims,
		},
		{
			name: "Missing user id",
			setup: func() string {
				return sign(jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    "investledger",
				}, testSecret)
			},
			expectError: ErrInvalidClaims,
		},
		{
			name: "User id is not a uuid",
			setup: func() string {
				return sign(Claims{
					UserID:         "42",
					StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: "investledger"},
				}, testSecret)
			},
			expectError: ErrInvalidClaims,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			id, err := jwtService.ValidateToken(tokenString)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID, id)
			}
		})
	}
}
