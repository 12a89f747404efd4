package credit

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
	mockcore "github.com/amirhossein-jamali/medimeet/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/medimeet/mocks/port/persistence"
)

type staticPlans struct {
	plan entity.Plan
	ok   bool
}

func (s staticPlans) CurrentPlan(context.Context, *entity.Principal) (entity.Plan, bool) {
	return s.plan, s.ok
}

var allocationNow = time.Date(2024, 5, 14, 9, 30, 0, 0, time.UTC)

func newPatient(id string, credits int64) *entity.User {
	u := &entity.User{ID: id, ExternalID: "ext_" + id, Role: entity.RolePatient}
	u.SetCredits(credits)
	return u
}

func purchase(userID string, plan entity.Plan, at time.Time) *entity.CreditTransaction {
	pkg := plan.String()
	return &entity.CreditTransaction{
		ID:        "prior",
		UserID:    userID,
		Amount:    plan.MonthlyCredits(),
		Type:      entity.CreditPurchase,
		PackageID: &pkg,
		CreatedAt: at,
	}
}

func TestService_AllocateMonthlyCredits(t *testing.T) {
	testCases := []struct {
		name            string
		user            *entity.User
		plans           staticPlans
		policy          FailurePolicy
		mockSetup       func(uow *mockpersistence.MockUnitOfWork, users *mockpersistence.MockUserRepository, ledger *mockpersistence.MockCreditTransactionRepository, views *mockcore.MockViewInvalidator)
		expectedGranted bool
		expectedAmount  int64
		expectedBalance int64
		expectedError   error
	}{
		{
			name:  "first grant of the month",
			user:  newPatient("u1", 0),
			plans: staticPlans{plan: entity.PlanStandard, ok: true},
			mockSetup: func(uow *mockpersistence.MockUnitOfWork, users *mockpersistence.MockUserRepository, ledger *mockpersistence.MockCreditTransactionRepository, views *mockcore.MockViewInvalidator) {
				uow.EXPECT().Do(mock.Anything, mock.Anything).Return(nil)
				ledger.EXPECT().LatestPurchase(mock.Anything, "u1").Return(nil, nil)
				ledger.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.CreditTransaction) bool {
					return tx.UserID == "u1" && tx.Amount == 10 && tx.Type == entity.CreditPurchase
				})).Return(nil)
				users.EXPECT().AdjustCredits(mock.Anything, "u1", int64(10)).Return(newPatient("u1", 10), nil)
				users.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
					plan, ok := u.CurrentPlan()
					return ok && plan == entity.PlanStandard
				})).Return(nil)
				views.EXPECT().Invalidate(mock.Anything, []string{"/doctors", "/appointments"}).Return(nil)
			},
			expectedGranted: true,
			expectedAmount:  10,
			expectedBalance: 10,
		},
		{
			name:  "already granted this month",
			user:  newPatient("u1", 10),
			plans: staticPlans{plan: entity.PlanStandard, ok: true},
			mockSetup: func(uow *mockpersistence.MockUnitOfWork, users *mockpersistence.MockUserRepository, ledger *mockpersistence.MockCreditTransactionRepository, views *mockcore.MockViewInvalidator) {
				uow.EXPECT().Do(mock.Anything, mock.Anything).Return(nil)
				ledger.EXPECT().LatestPurchase(mock.Anything, "u1").
					Return(purchase("u1", entity.PlanStandard, allocationNow.AddDate(0, 0, -10)), nil)
			},
			expectedBalance: 10,
		},
		{
			name:  "previous grant in an earlier month",
			user:  newPatient("u1", 3),
			plans: staticPlans{plan: entity.PlanStandard, ok: true},
			mockSetup: func(uow *mockpersistence.MockUnitOfWork, users *mockpersistence.MockUserRepository, ledger *mockpersistence.MockCreditTransactionRepository, views *mockcore.MockViewInvalidator) {
				uow.EXPECT().Do(mock.Anything, mock.Anything).Return(nil)
				ledger.EXPECT().LatestPurchase(mock.Anything, "u1").
					Return(purchase("u1", entity.PlanStandard, allocationNow.AddDate(0, -1, 0)), nil)
				ledger.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
				users.EXPECT().AdjustCredits(mock.Anything, "u1", int64(10)).Return(newPatient("u1", 13), nil)
				users.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
				views.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(nil)
			},
			expectedGranted: true,
			expectedAmount:  10,
			expectedBalance: 13,
		},
		{
			name:  "plan upgraded within the month",
			user:  newPatient("u1", 10),
			plans: staticPlans{plan: entity.PlanPremium, ok: true},
			mockSetup: func(uow *mockpersistence.MockUnitOfWork, users *mockpersistence.MockUserRepository, ledger *mockpersistence.MockCreditTransactionRepository, views *mockcore.MockViewInvalidator) {
				uow.EXPECT().Do(mock.Anything, mock.Anything).Return(nil)
				ledger.EXPECT().LatestPurchase(mock.Anything, "u1").
					Return(purchase("u1", entity.PlanStandard, allocationNow.AddDate(0, 0, -2)), nil)
				ledger.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
				users.EXPECT().AdjustCredits(mock.Anything, "u1", int64(24)).Return(newPatient("u1", 34), nil)
				users.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
				views.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(nil)
			},
			expectedGranted: true,
			expectedAmount:  24,
			expectedBalance: 34,
		},
		{
			name:  "no plan held",
			user:  newPatient("u1", 4),
			plans: staticPlans{},
			mockSetup: func(*mockpersistence.MockUnitOfWork, *mockpersistence.MockUserRepository, *mockpersistence.MockCreditTransactionRepository, *mockcore.MockViewInvalidator) {
			},
			expectedBalance: 4,
		},
		{
			name:  "doctors receive no allowance",
			user:  &entity.User{ID: "d1", Role: entity.RoleDoctor},
			plans: staticPlans{plan: entity.PlanPremium, ok: true},
			mockSetup: func(*mockpersistence.MockUnitOfWork, *mockpersistence.MockUserRepository, *mockpersistence.MockCreditTransactionRepository, *mockcore.MockViewInvalidator) {
			},
			expectedBalance: 0,
		},
		{
			name:   "best effort swallows a ledger failure",
			user:   newPatient("u1", 1),
			plans:  staticPlans{plan: entity.PlanStandard, ok: true},
			policy: BestEffort,
			mockSetup: func(uow *mockpersistence.MockUnitOfWork, users *mockpersistence.MockUserRepository, ledger *mockpersistence.MockCreditTransactionRepository, views *mockcore.MockViewInvalidator) {
				uow.EXPECT().Do(mock.Anything, mock.Anything).Return(nil)
				ledger.EXPECT().LatestPurchase(mock.Anything, "u1").Return(nil, nil)
				ledger.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrPersistence)
			},
			expectedBalance: 1,
		},
		{
			name:   "must succeed surfaces a commit failure",
			user:   newPatient("u1", 1),
			plans:  staticPlans{plan: entity.PlanStandard, ok: true},
			policy: MustSucceed,
			mockSetup: func(uow *mockpersistence.MockUnitOfWork, users *mockpersistence.MockUserRepository, ledger *mockpersistence.MockCreditTransactionRepository, views *mockcore.MockViewInvalidator) {
				uow.EXPECT().Do(mock.Anything, mock.Anything).Return(errs.ErrPersistence)
			},
			expectedBalance: 1,
			expectedError:   errs.ErrPersistence,
		},
		{
			name:  "invalidation failure does not undo the grant",
			user:  newPatient("u1", 0),
			plans: staticPlans{plan: entity.PlanFree, ok: true},
			mockSetup: func(uow *mockpersistence.MockUnitOfWork, users *mockpersistence.MockUserRepository, ledger *mockpersistence.MockCreditTransactionRepository, views *mockcore.MockViewInvalidator) {
				uow.EXPECT().Do(mock.Anything, mock.Anything).Return(nil)
				ledger.EXPECT().LatestPurchase(mock.Anything, "u1").Return(nil, nil)
				ledger.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.CreditTransaction) bool {
					return tx.Amount == 0
				})).Return(nil)
				users.EXPECT().AdjustCredits(mock.Anything, "u1", int64(0)).Return(newPatient("u1", 0), nil)
				users.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
				views.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(errors.New("redis down"))
			},
			expectedGranted: true,
			expectedAmount:  0,
			expectedBalance: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUow := mockpersistence.NewMockUnitOfWork(t)
			mockUsers := mockpersistence.NewMockUserRepository(t)
			mockLedger := mockpersistence.NewMockCreditTransactionRepository(t)
			mockViews := mockcore.NewMockViewInvalidator(t)

			mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUsers).Maybe()
			mockUow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockLedger).Maybe()
			tc.mockSetup(mockUow, mockUsers, mockLedger, mockViews)

			service := NewService(
				mockUow,
				tc.plans,
				mockViews,
				mockcore.NewFixedTimeProvider(t, allocationNow),
				mockcore.NewPermissiveLogger(t),
			).WithAllocationPolicy(tc.policy)

			result, err := service.AllocateMonthlyCredits(context.Background(), &entity.Principal{User: tc.user})

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
			require.NotNil(t, result)
			assert.Equal(t, tc.expectedGranted, result.Granted)
			assert.Equal(t, tc.expectedAmount, result.Amount)
			assert.Equal(t, tc.expectedBalance, result.User.Credits())
		})
	}
}

func TestService_AllocateMonthlyCredits_Unauthenticated(t *testing.T) {
	service := NewService(nil, staticPlans{}, nil, nil, nil)

	result, err := service.AllocateMonthlyCredits(context.Background(), nil)

	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	assert.Nil(t, result)
}

func TestService_AllocateMonthlyCredits_BillingLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-05-31 20:00 UTC is already June in Tokyo
	now := time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC)

	mockUow := mockpersistence.NewMockUnitOfWork(t)
	mockUsers := mockpersistence.NewMockUserRepository(t)
	mockLedger := mockpersistence.NewMockCreditTransactionRepository(t)
	mockViews := mockcore.NewMockViewInvalidator(t)

	mockUow.EXPECT().Do(mock.Anything, mock.Anything).Return(nil)
	mockUow.EXPECT().GetUserRepository(mock.Anything).Return(mockUsers)
	mockUow.EXPECT().GetCreditTransactionRepository(mock.Anything).Return(mockLedger)
	mockLedger.EXPECT().LatestPurchase(mock.Anything, "u1").
		Return(purchase("u1", entity.PlanStandard, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)), nil)
	mockLedger.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	mockUsers.EXPECT().AdjustCredits(mock.Anything, "u1", int64(10)).Return(newPatient("u1", 20), nil)
	mockUsers.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	mockViews.EXPECT().Invalidate(mock.Anything, mock.Anything).Return(nil)

	service := NewService(
		mockUow,
		staticPlans{plan: entity.PlanStandard, ok: true},
		mockViews,
		mockcore.NewFixedTimeProvider(t, now),
		mockcore.NewPermissiveLogger(t),
	).WithBillingLocation(tokyo)

	result, err := service.AllocateMonthlyCredits(context.Background(), &entity.Principal{User: newPatient("u1", 10)})

	require.NoError(t, err)
	assert.True(t, result.Granted)
}
