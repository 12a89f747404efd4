package database

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/medimeet/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxAttempts   int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// ConnectRetryConfig derives the startup retry policy from the database config
func ConnectRetryConfig(c *Config) RetryConfig {
	return RetryConfig{
		MaxAttempts:   c.RetryAttempts,
		RetryInterval: c.RetryDelay,
		MaxInterval:   30 * time.Second,
		JitterFactor:  0.2,
	}
}

// Retry runs operation until it succeeds, returns an error retryable rejects,
// runs out of attempts, or ctx ends. A nil retryable retries every error.
// Units of work are never retried through here.
func Retry(
	ctx context.Context,
	config RetryConfig,
	name string,
	operation func(ctx context.Context) error,
	retryable func(error) bool,
	logger coreport.Logger,
) error {
	var err error
	attempts := max(config.MaxAttempts, 1)

	for attempt := 0; attempt < attempts; attempt++ {
		if err = operation(ctx); err == nil {
			return nil
		}

		if retryable != nil && !retryable(err) {
			return err
		}
		if attempt == attempts-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, config)
		logger.Warn("Operation failed, retrying", map[string]any{
			"operation":   name,
			"attempt":     attempt + 1,
			"max_retries": attempts,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.Warn("Retry canceled by context", map[string]any{
				"operation": name,
				"attempts":  attempt + 1,
				"error":     ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"operation": name,
		"attempts":  attempts,
		"error":     err.Error(),
	})
	return err
}

// calculateBackoffWithJitter doubles the interval per attempt up to MaxInterval, then adds jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval << uint(attempt)
	if backoff > config.MaxInterval || backoff < 0 {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}
	return backoff
}

// IsTransientError reports whether err looks like a dropped or refused connection
func IsTransientError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "too many connections") ||
		strings.Contains(errMsg, "server closed") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "no such host") ||
		strings.Contains(errMsg, "eof")
}
