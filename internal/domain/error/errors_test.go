package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Unauthenticated", ErrUnauthenticated, 4010},
		{"Forbidden", ErrForbidden, 4030},
		{"RoleRequired", ErrRoleRequired, 4031},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"AppointmentNotFound", ErrAppointmentNotFound, 4041},
		{"SlotNotFound", ErrSlotNotFound, 4042},
		{"Validation", ErrValidation, 4000},
		{"InvalidStateTransition", ErrInvalidStateTransition, 4090},
		{"AppointmentNotEnded", ErrAppointmentNotEnded, 4091},
		{"RoleAlreadyAssigned", ErrRoleAlreadyAssigned, 4092},
		{"InsufficientCredits", ErrInsufficientCredits, 4020},
		{"Persistence", ErrPersistence, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrAppointmentNotFound), 4041},
		{"TypedValidation", NewValidationError("notes", "required"), 4000},
		{"TypedTransition", NewStateTransitionError("appointment", "a1", "CANCELLED", "COMPLETED"), 4090},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestSentinelHierarchy(t *testing.T) {
	if !errors.Is(ErrAppointmentNotEnded, ErrInvalidStateTransition) {
		t.Error("ErrAppointmentNotEnded should be an ErrInvalidStateTransition")
	}
	if !errors.Is(ErrRoleRequired, ErrForbidden) {
		t.Error("ErrRoleRequired should be an ErrForbidden")
	}
	if !IsNotFoundError(ErrSlotNotFound) || !IsNotFoundError(ErrUserNotFound) {
		t.Error("entity not found errors should match ErrNotFound")
	}
	if IsNotFoundError(ErrForbidden) {
		t.Error("ErrForbidden should not match ErrNotFound")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("start", "must be before end")

	expectedMsg := "validation failed on start: must be before end"
	if err.Error() != expectedMsg {
		t.Errorf("ValidationError.Error() = %s, want %s", err.Error(), expectedMsg)
	}
	if !IsValidationError(err) {
		t.Error("IsValidationError should return true")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("errors.As should extract *ValidationError")
	}
	fields := ve.LogFields()
	if fields["field"] != "start" || fields["error_code"] != CodeValidation {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestStateTransitionError(t *testing.T) {
	err := NewStateTransitionError("appointment", "a1", "COMPLETED", "CANCELLED")

	expectedMsg := "invalid state transition for appointment a1: COMPLETED -> CANCELLED"
	if err.Error() != expectedMsg {
		t.Errorf("StateTransitionError.Error() = %s, want %s", err.Error(), expectedMsg)
	}
	if !IsStateTransitionError(err) {
		t.Error("IsStateTransitionError should return true")
	}
	if errors.Is(err, ErrAppointmentNotEnded) {
		t.Error("a generic transition error is not a timing error")
	}
}

func TestInsufficientCreditsError(t *testing.T) {
	err := NewInsufficientCreditsError("u1", 2, 1)

	if !errors.Is(err, ErrInsufficientCredits) {
		t.Error("errors.Is(err, ErrInsufficientCredits) = false, want true")
	}

	var ice *InsufficientCreditsError
	if !errors.As(err, &ice) {
		t.Fatal("errors.As should extract *InsufficientCreditsError")
	}
	if ice.Required != 2 || ice.Available != 1 {
		t.Errorf("unexpected values: %+v", ice)
	}
}

func TestLedgerError(t *testing.T) {
	baseErr := ErrPersistence
	err := NewLedgerError("settle_cancellation", "u1", 2, baseErr)

	expectedMsg := "ledger settle_cancellation failed for user u1 (amount: 2): persistence failure"
	if err.Error() != expectedMsg {
		t.Errorf("LedgerError.Error() = %s, want %s", err.Error(), expectedMsg)
	}
	if !errors.Is(err, baseErr) {
		t.Error("errors.Is(ledgerErr, baseErr) = false, want true")
	}

	var le *LedgerError
	if !errors.As(err, &le) {
		t.Fatal("errors.As should extract *LedgerError")
	}
	if le.LogFields()["error_code"] != CodePersistence {
		t.Errorf("unexpected error code: %v", le.LogFields()["error_code"])
	}
}

func TestForbiddenHelpers(t *testing.T) {
	if !IsForbiddenError(fmt.Errorf("cancel: %w", ErrRoleRequired)) {
		t.Error("wrapped role error should be forbidden")
	}
	if IsForbiddenError(ErrValidation) {
		t.Error("validation error should not be forbidden")
	}
}
