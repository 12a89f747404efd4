package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation             = 4000
	CodeUnauthenticated        = 4010
	CodeInsufficientCredits    = 4020
	CodeForbidden              = 4030
	CodeRoleRequired           = 4031
	CodeUserNotFound           = 4040
	CodeAppointmentNotFound    = 4041
	CodeSlotNotFound           = 4042
	CodeInvalidStateTransition = 4090
	CodeAppointmentNotEnded    = 4091
	CodeRoleAlreadyAssigned    = 4092
	CodeDuplicateUser          = 4093
	CodeRateLimited            = 4290

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodePersistence    = 5030
)

// Base error types
var (
	// ErrUnauthenticated is returned when no valid principal is attached to the call
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrForbidden is returned when the principal does not own the target entity
	ErrForbidden = errors.New("forbidden")

	// ErrRoleRequired is returned when the principal's role does not allow the operation
	ErrRoleRequired = fmt.Errorf("%w: role not permitted", ErrForbidden)

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrAppointmentNotFound is returned when the requested appointment doesn't exist
	ErrAppointmentNotFound = fmt.Errorf("%w: appointment", ErrNotFound)

	// ErrSlotNotFound is returned when the requested availability slot doesn't exist
	ErrSlotNotFound = fmt.Errorf("%w: availability slot", ErrNotFound)

	// ErrValidation is returned for malformed or missing input
	ErrValidation = errors.New("validation failed")

	// ErrInvalidStateTransition is returned when an entity is not in the state an operation requires
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrAppointmentNotEnded is returned when completing an appointment before its end time
	ErrAppointmentNotEnded = fmt.Errorf("%w: appointment has not ended yet", ErrInvalidStateTransition)

	// ErrRoleAlreadyAssigned is returned when onboarding a user that already has a role
	ErrRoleAlreadyAssigned = fmt.Errorf("%w: role already assigned", ErrInvalidStateTransition)

	// ErrInsufficientCredits is returned when a patient cannot pay for a booking
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrPersistence is returned when a unit of work could not be committed
	ErrPersistence = errors.New("persistence failure")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors.
// More specific errors are checked before the ones they wrap.
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrRoleRequired):
		return CodeRoleRequired
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrAppointmentNotFound):
		return CodeAppointmentNotFound
	case errors.Is(err, ErrSlotNotFound):
		return CodeSlotNotFound
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrAppointmentNotEnded):
		return CodeAppointmentNotEnded
	case errors.Is(err, ErrRoleAlreadyAssigned):
		return CodeRoleAlreadyAssigned
	case errors.Is(err, ErrInvalidStateTransition):
		return CodeInvalidStateTransition
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrPersistence):
		return CodePersistence
	default:
		return CodeInternalServer
	}
}

// ValidationError describes which input field was rejected and why
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a new field validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StateTransitionError provides details about a rejected lifecycle change
type StateTransitionError struct {
	Entity string
	ID     string
	From   string
	To     string
}

// Error implements the error interface
func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition for %s %s: %s -> %s", e.Entity, e.ID, e.From, e.To)
}

// Is checks if the target error is an ErrInvalidStateTransition
func (e *StateTransitionError) Is(target error) bool {
	return target == ErrInvalidStateTransition
}

// LogFields returns a map of fields for structured logging
func (e *StateTransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "state_transition",
		"entity":     e.Entity,
		"entity_id":  e.ID,
		"from":       e.From,
		"to":         e.To,
		"error_code": CodeInvalidStateTransition,
	}
}

// NewStateTransitionError creates a new state transition error
func NewStateTransitionError(entity, id, from, to string) error {
	return &StateTransitionError{Entity: entity, ID: id, From: from, To: to}
}

// InsufficientCreditsError provides detailed error information for a failed booking debit
type InsufficientCreditsError struct {
	UserID    string
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for user %s: required %d, available %d",
		e.UserID, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"user_id":    e.UserID,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(userID string, required, available int64) error {
	return &InsufficientCreditsError{UserID: userID, Required: required, Available: available}
}

// LedgerError wraps a failure that happened while writing ledger entries
type LedgerError struct {
	Operation string
	UserID    string
	Amount    int64
	Err       error
}

// Error implements the error interface
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s failed for user %s (amount: %d): %v", e.Operation, e.UserID, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(operation, userID string, amount int64, err error) error {
	return &LedgerError{Operation: operation, UserID: userID, Amount: amount, Err: err}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsForbiddenError checks if the error is an ownership or role rejection
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsValidationError checks if the error is caused by bad input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStateTransitionError checks if the error is a rejected lifecycle change
func IsStateTransitionError(err error) bool {
	return errors.Is(err, ErrInvalidStateTransition)
}
