package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps failures of the transaction machinery itself (begin, commit,
// rollback) onto domain errors. Repository errors are already mapped.
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error. Errors that already carry
// a domain meaning pass through unchanged.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if isDomainError(err) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s interrupted: %w", errs.ErrPersistence, operation, err)
	}

	return fmt.Errorf("%w: %s failed (%s): %s", errs.ErrPersistence, operation, m.Kind(err), err.Error())
}

// Kind names the failure family of err for logs
func (m *ErrorMapper) Kind(err error) string {
	errMsg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "serializ") ||
		strings.Contains(errMsg, "lock timeout") ||
		strings.Contains(errMsg, "lock wait timeout") ||
		strings.Contains(errMsg, "database is locked"):
		return "contention"
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "duplicate entry") ||
		strings.Contains(errMsg, "unique constraint"):
		return "duplicate"
	case strings.Contains(errMsg, "check constraint") ||
		strings.Contains(errMsg, "foreign key"):
		return "constraint"
	case strings.Contains(errMsg, "connection") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "eof"):
		return "connection"
	case strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return "timeout"
	default:
		return "unknown"
	}
}

// isDomainError reports whether err belongs to the domain taxonomy
func isDomainError(err error) bool {
	for _, target := range []error{
		errs.ErrUnauthenticated,
		errs.ErrForbidden,
		errs.ErrNotFound,
		errs.ErrValidation,
		errs.ErrInvalidStateTransition,
		errs.ErrInsufficientCredits,
		errs.ErrDuplicateUser,
		errs.ErrPersistence,
		errs.ErrInternalServer,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
