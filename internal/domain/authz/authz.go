// Package authz holds every role-based decision in one place. Each switch
// enumerates the full role set so adding a role means revisiting this file.
package authz

import (
	"fmt"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
)

// Action is an operation gated by role
type Action string

// Gated actions
const (
	ActionReadProfile             Action = "read_profile"
	ActionOnboard                 Action = "onboard"
	ActionAllocateCredits         Action = "allocate_credits"
	ActionViewCredits             Action = "view_credits"
	ActionManageAvailability      Action = "manage_availability"
	ActionViewDoctorAppointments  Action = "view_doctor_appointments"
	ActionAnnotateAppointment     Action = "annotate_appointment"
	ActionCompleteAppointment     Action = "complete_appointment"
	ActionCancelAppointment       Action = "cancel_appointment"
	ActionBrowseSlots             Action = "browse_slots"
	ActionBookAppointment         Action = "book_appointment"
	ActionViewPatientAppointments Action = "view_patient_appointments"
	ActionReviewDoctors           Action = "review_doctors"
)

// Dashboard paths
const (
	PathHome               = "/"
	PathOnboarding         = "/onboarding"
	PathDoctors            = "/doctors"
	PathAppointments       = "/appointments"
	PathDoctorDashboard    = "/doctor"
	PathDoctorVerification = "/doctor/verification"
	PathAdmin              = "/admin"
)

var (
	patientActions = actionSet(ActionReadProfile, ActionAllocateCredits, ActionViewCredits,
		ActionCancelAppointment, ActionBrowseSlots, ActionBookAppointment, ActionViewPatientAppointments)
	doctorActions = actionSet(ActionReadProfile, ActionViewCredits, ActionManageAvailability,
		ActionViewDoctorAppointments, ActionAnnotateAppointment, ActionCompleteAppointment, ActionCancelAppointment)
	adminActions      = actionSet(ActionReadProfile, ActionReviewDoctors)
	unassignedActions = actionSet(ActionReadProfile, ActionOnboard)
)

func actionSet(actions ...Action) map[Action]struct{} {
	set := make(map[Action]struct{}, len(actions))
	for _, a := range actions {
		set[a] = struct{}{}
	}
	return set
}

// Allows reports whether role may perform action
func Allows(role entity.Role, action Action) (bool, error) {
	var set map[Action]struct{}
	switch role {
	case entity.RolePatient:
		set = patientActions
	case entity.RoleDoctor:
		set = doctorActions
	case entity.RoleAdmin:
		set = adminActions
	case entity.RoleUnassigned:
		set = unassignedActions
	default:
		return false, fmt.Errorf("%w: unknown role %q", errs.ErrForbidden, role)
	}
	_, ok := set[action]
	return ok, nil
}

// Require returns ErrRoleRequired unless the user's role allows action
func Require(user *entity.User, action Action) error {
	if user == nil {
		return errs.ErrUnauthenticated
	}
	ok, err := Allows(user.Role, action)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s cannot %s", errs.ErrRoleRequired, user.Role, action)
	}
	return nil
}

// DashboardPath returns the landing view for a user
func DashboardPath(user *entity.User) (string, error) {
	switch user.Role {
	case entity.RolePatient:
		return PathDoctors, nil
	case entity.RoleDoctor:
		if user.IsVerifiedDoctor() {
			return PathDoctorDashboard, nil
		}
		return PathDoctorVerification, nil
	case entity.RoleAdmin:
		return PathAdmin, nil
	case entity.RoleUnassigned:
		return PathOnboarding, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", errs.ErrForbidden, user.Role)
	}
}

// AppointmentViews returns the dashboard views an actor's appointment change makes stale
func AppointmentViews(role entity.Role) ([]string, error) {
	switch role {
	case entity.RoleDoctor:
		return []string{PathDoctorDashboard}, nil
	case entity.RolePatient:
		return []string{PathAppointments}, nil
	case entity.RoleAdmin:
		return []string{PathAdmin}, nil
	case entity.RoleUnassigned:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown role %q", errs.ErrForbidden, role)
	}
}
