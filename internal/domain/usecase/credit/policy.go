package credit

import (
	"errors"

	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
)

// FailurePolicy decides what a ledger failure means to the caller
type FailurePolicy int

const (
	// MustSucceed surfaces the failure so the caller can retry
	MustSucceed FailurePolicy = iota
	// BestEffort logs the failure and lets the caller continue with unchanged state
	BestEffort
)

func (p FailurePolicy) String() string {
	switch p {
	case BestEffort:
		return "best-effort"
	case MustSucceed:
		return "must-succeed"
	default:
		return "unknown"
	}
}

type logFielder interface {
	LogFields() map[string]any
}

// Handle logs err and returns it, or returns nil under BestEffort
func (p FailurePolicy) Handle(logger coreport.Logger, operation string, err error, fields map[string]any) error {
	if err == nil {
		return nil
	}

	logFields := map[string]any{
		"operation": operation,
		"policy":    p.String(),
		"error":     err.Error(),
	}
	var lf logFielder
	if errors.As(err, &lf) {
		for k, v := range lf.LogFields() {
			logFields[k] = v
		}
	}
	for k, v := range fields {
		logFields[k] = v
	}

	if p == BestEffort {
		logger.Warn("Ledger operation failed, continuing without changes", logFields)
		return nil
	}

	logger.Error("Ledger operation failed", logFields)
	return err
}
