package authzservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/investledger/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestAuthorize(t *testing.T) {
	service, repo := NewMock(t)
	actor := uuid.New()

	tests := []struct {
		name          string
		prepareMock   func()
		authorized    bool
		expectedError error
	}{
		{
			name: "Admin passes",
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), actor).Return(&domain.Profile{ID: actor, IsAdmin: true}, nil).Times(2)
			},
			authorized: true,
		},
		{
			name: "Regular user is forbidden",
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), actor).Return(&domain.Profile{ID: actor}, nil).Times(2)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name: "Unknown actor is forbidden",
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), actor).Return(nil, nil).Times(2)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name: "Store failure propagates",
			prepareMock: func() {
				repo.EXPECT().GetByID(gomock.Any(), actor).Return(nil, domain.ErrStoreUnavailable).Times(2)
			},
			expectedError: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			ok, _ := service.IsAuthorized(context.Background(), actor)
			assert.Equal(t, tt.authorized, ok)

			err := service.Authorize(context.Background(), actor)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
