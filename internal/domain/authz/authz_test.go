package authz

import (
	"testing"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequire(t *testing.T) {
	testCases := []struct {
		name    string
		role    entity.Role
		action  Action
		allowed bool
	}{
		{"Patient allocates credits", entity.RolePatient, ActionAllocateCredits, true},
		{"Patient books", entity.RolePatient, ActionBookAppointment, true},
		{"Patient cannot manage availability", entity.RolePatient, ActionManageAvailability, false},
		{"Doctor manages availability", entity.RoleDoctor, ActionManageAvailability, true},
		{"Doctor completes", entity.RoleDoctor, ActionCompleteAppointment, true},
		{"Doctor cannot book", entity.RoleDoctor, ActionBookAppointment, false},
		{"Doctor does not get monthly credits", entity.RoleDoctor, ActionAllocateCredits, false},
		{"Both cancel", entity.RoleDoctor, ActionCancelAppointment, true},
		{"Admin reviews doctors", entity.RoleAdmin, ActionReviewDoctors, true},
		{"Admin cannot cancel", entity.RoleAdmin, ActionCancelAppointment, false},
		{"Unassigned onboards", entity.RoleUnassigned, ActionOnboard, true},
		{"Patient cannot onboard again", entity.RolePatient, ActionOnboard, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Require(&entity.User{Role: tc.role}, tc.action)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errs.ErrRoleRequired)
				assert.ErrorIs(t, err, errs.ErrForbidden)
			}
		})
	}
}

func TestRequireEdgeCases(t *testing.T) {
	assert.ErrorIs(t, Require(nil, ActionReadProfile), errs.ErrUnauthenticated)

	err := Require(&entity.User{Role: entity.Role("NURSE")}, ActionReadProfile)
	assert.ErrorIs(t, err, errs.ErrForbidden)
	assert.NotErrorIs(t, err, errs.ErrRoleRequired)
}

func TestDashboardPath(t *testing.T) {
	verified := &entity.User{Role: entity.RoleDoctor, Doctor: &entity.DoctorProfile{VerificationStatus: entity.VerificationVerified}}
	pending := &entity.User{Role: entity.RoleDoctor, Doctor: &entity.DoctorProfile{VerificationStatus: entity.VerificationPending}}

	testCases := []struct {
		user     *entity.User
		expected string
	}{
		{&entity.User{Role: entity.RolePatient}, "/doctors"},
		{verified, "/doctor"},
		{pending, "/doctor/verification"},
		{&entity.User{Role: entity.RoleAdmin}, "/admin"},
		{&entity.User{Role: entity.RoleUnassigned}, "/onboarding"},
	}
	for _, tc := range testCases {
		path, err := DashboardPath(tc.user)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, path)
	}

	_, err := DashboardPath(&entity.User{Role: "NURSE"})
	assert.Error(t, err)
}

func TestAppointmentViews(t *testing.T) {
	paths, err := AppointmentViews(entity.RoleDoctor)
	require.NoError(t, err)
	assert.Equal(t, []string{"/doctor"}, paths)

	paths, err = AppointmentViews(entity.RolePatient)
	require.NoError(t, err)
	assert.Equal(t, []string{"/appointments"}, paths)
}
