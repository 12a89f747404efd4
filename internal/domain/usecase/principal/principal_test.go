package principal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
	mockcore "github.com/amirhossein-jamali/medimeet/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/medimeet/mocks/port/persistence"
)

var fixedNow = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Service, *mockpersistence.MockUnitOfWork, *mockpersistence.MockUserRepository, *mockcore.MockIdentityProvider) {
	mockUow := mockpersistence.NewMockUnitOfWork(t)
	mockUsers := mockpersistence.NewMockUserRepository(t)
	mockIdentity := mockcore.NewMockIdentityProvider(t)

	mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUsers).Maybe()

	service := NewService(mockUow, mockIdentity, mockcore.NewFixedTimeProvider(t, fixedNow), mockcore.NewPermissiveLogger(t)).(*Service)
	return service, mockUow, mockUsers, mockIdentity
}

func TestService_Resolve(t *testing.T) {
	claims := &coreport.IdentityClaims{Subject: "user_2x", Email: "p@example.com"}

	testCases := []struct {
		name          string
		token         string
		mockSetup     func(users *mockpersistence.MockUserRepository, identity *mockcore.MockIdentityProvider)
		expectedError error
	}{
		{
			name:  "known user",
			token: "valid",
			mockSetup: func(users *mockpersistence.MockUserRepository, identity *mockcore.MockIdentityProvider) {
				identity.EXPECT().Authenticate(mock.Anything, "valid").Return(claims, nil)
				users.EXPECT().GetByExternalID(mock.Anything, "user_2x").Return(&entity.User{ID: "u1", ExternalID: "user_2x"}, nil)
			},
		},
		{
			name:          "missing token",
			token:         "",
			mockSetup:     func(*mockpersistence.MockUserRepository, *mockcore.MockIdentityProvider) {},
			expectedError: errs.ErrUnauthenticated,
		},
		{
			name:  "rejected token",
			token: "expired",
			mockSetup: func(users *mockpersistence.MockUserRepository, identity *mockcore.MockIdentityProvider) {
				identity.EXPECT().Authenticate(mock.Anything, "expired").Return(nil, errors.New("token is expired"))
			},
			expectedError: errs.ErrUnauthenticated,
		},
		{
			name:  "user never synced",
			token: "valid",
			mockSetup: func(users *mockpersistence.MockUserRepository, identity *mockcore.MockIdentityProvider) {
				identity.EXPECT().Authenticate(mock.Anything, "valid").Return(claims, nil)
				users.EXPECT().GetByExternalID(mock.Anything, "user_2x").Return(nil, errs.ErrUserNotFound)
			},
			expectedError: errs.ErrUserNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, _, mockUsers, mockIdentity := setup(t)
			tc.mockSetup(mockUsers, mockIdentity)

			principal, err := service.Resolve(context.Background(), tc.token)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, principal)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", principal.ID())
			assert.Equal(t, claims, principal.Claims)
		})
	}
}

func TestService_CurrentPlan(t *testing.T) {
	claims := &coreport.IdentityClaims{Subject: "user_2x"}

	t.Run("premium wins over standard", func(t *testing.T) {
		service, _, _, mockIdentity := setup(t)
		mockIdentity.EXPECT().HasPlan(claims, "premium").Return(true)

		plan, ok := service.CurrentPlan(context.Background(), &entity.Principal{
			User:   &entity.User{ID: "u1", Role: entity.RolePatient},
			Claims: claims,
		})

		assert.True(t, ok)
		assert.Equal(t, entity.PlanPremium, plan)
	})

	t.Run("falls through to free", func(t *testing.T) {
		service, _, _, mockIdentity := setup(t)
		mockIdentity.EXPECT().HasPlan(claims, "premium").Return(false)
		mockIdentity.EXPECT().HasPlan(claims, "standard").Return(false)
		mockIdentity.EXPECT().HasPlan(claims, "free_user").Return(true)

		plan, ok := service.CurrentPlan(context.Background(), &entity.Principal{
			User:   &entity.User{ID: "u1", Role: entity.RolePatient},
			Claims: claims,
		})

		assert.True(t, ok)
		assert.Equal(t, entity.PlanFree, plan)
	})

	t.Run("no plan held", func(t *testing.T) {
		service, _, _, mockIdentity := setup(t)
		mockIdentity.EXPECT().HasPlan(claims, mock.Anything).Return(false).Times(3)

		_, ok := service.CurrentPlan(context.Background(), &entity.Principal{
			User:   &entity.User{ID: "u1", Role: entity.RolePatient},
			Claims: claims,
		})

		assert.False(t, ok)
	})

	t.Run("doctors are not asked about plans", func(t *testing.T) {
		service, _, _, _ := setup(t)

		_, ok := service.CurrentPlan(context.Background(), &entity.Principal{
			User:   &entity.User{ID: "d1", Role: entity.RoleDoctor},
			Claims: claims,
		})

		assert.False(t, ok)
	})
}

func TestService_SyncUser(t *testing.T) {
	claims := &coreport.IdentityClaims{Subject: "user_2x", Email: "new@example.com", Name: "Pat", ImageURL: "https://img/p.png"}

	t.Run("creates user on first sign-in", func(t *testing.T) {
		service, mockUow, mockUsers, mockIdentity := setup(t)
		mockIdentity.EXPECT().Authenticate(mock.Anything, "tok").Return(claims, nil)
		mockUow.EXPECT().Do(mock.Anything, mock.Anything).Return(nil)
		mockUsers.EXPECT().GetByExternalID(mock.Anything, "user_2x").Return(nil, errs.ErrUserNotFound)
		mockUsers.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ExternalID == "user_2x" && u.Role == entity.RoleUnassigned && u.Credits() == 0
		})).Return(nil)

		user, err := service.SyncUser(context.Background(), "tok")

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, fixedNow, user.CreatedAt)
	})

	t.Run("refreshes changed display fields", func(t *testing.T) {
		service, mockUow, mockUsers, mockIdentity := setup(t)
		existing := &entity.User{ID: "u1", ExternalID: "user_2x", Email: "old@example.com", Role: entity.RolePatient}

		mockIdentity.EXPECT().Authenticate(mock.Anything, "tok").Return(claims, nil)
		mockUow.EXPECT().Do(mock.Anything, mock.Anything).Return(nil)
		mockUsers.EXPECT().GetByExternalID(mock.Anything, "user_2x").Return(existing, nil)
		mockUsers.EXPECT().Update(mock.Anything, existing).Return(nil)

		user, err := service.SyncUser(context.Background(), "tok")

		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("unchanged profile is not written", func(t *testing.T) {
		service, mockUow, mockUsers, mockIdentity := setup(t)
		existing := &entity.User{ID: "u1", ExternalID: "user_2x", Email: claims.Email, Name: claims.Name, ImageURL: claims.ImageURL}

		mockIdentity.EXPECT().Authenticate(mock.Anything, "tok").Return(claims, nil)
		mockUow.EXPECT().Do(mock.Anything, mock.Anything).Return(nil)
		mockUsers.EXPECT().GetByExternalID(mock.Anything, "user_2x").Return(existing, nil)

		user, err := service.SyncUser(context.Background(), "tok")

		require.NoError(t, err)
		assert.Same(t, existing, user)
	})

	t.Run("lost insert race reads the winner", func(t *testing.T) {
		service, mockUow, mockUsers, mockIdentity := setup(t)
		winner := &entity.User{ID: "u9", ExternalID: "user_2x"}

		mockIdentity.EXPECT().Authenticate(mock.Anything, "tok").Return(claims, nil)
		mockUow.EXPECT().Do(mock.Anything, mock.Anything).Return(nil)
		mockUsers.EXPECT().GetByExternalID(mock.Anything, "user_2x").Return(nil, errs.ErrUserNotFound).Once()
		mockUsers.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser)
		mockUsers.EXPECT().GetByExternalID(mock.Anything, "user_2x").Return(winner, nil).Once()

		user, err := service.SyncUser(context.Background(), "tok")

		require.NoError(t, err)
		assert.Equal(t, "u9", user.ID)
	})
}
