package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// RetryConfig defines retry behavior
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetryConfig returns sensible defaults for retry behavior
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2.0,
	}
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Don't retry context errors (timeout, cancellation)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	// Don't retry "no rows" errors
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}

	// Constraint violations and data integrity errors are never transient
	if code := sqlState(err); code != "" {
		switch code {
		case "23000", // integrity_constraint_violation
			"23001", // restrict_violation
			"23502", // not_null_violation
			"23503", // foreign_key_violation
			"23505", // unique_violation
			"23514", // check_violation
			"23P01", // exclusion_violation
			"42601", // syntax_error
			"42703", // undefined_column
			"42P01": // undefined_table
			return false
		}
		// Connection failures are worth another attempt
		switch code {
		case "08000", "08003", "08006", "08001", "08004", "57P01", "57P02", "57P03":
			return true
		}
		return false
	}

	// Driver-level errors without a SQLSTATE are treated as transient
	return true
}

// sqlState extracts the PostgreSQL error code from driver errors
func sqlState(err error) string {
	var pgdriverErr pgdriver.Error
	if errors.As(err, &pgdriverErr) {
		return pgdriverErr.Field('C')
	}

	var pgconnErr *pgconn.PgError
	if errors.As(err, &pgconnErr) {
		return pgconnErr.Code
	}

	return ""
}

// WithRetry executes a database operation with exponential backoff retry logic
func WithRetry(ctx context.Context, operation func() error) error {
	cfg := DefaultRetryConfig()

	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		lastErr = operation()
		if lastErr == nil {
			return nil
		}

		if attempt == cfg.MaxAttempts || !isRetryableError(lastErr) {
			return lastErr
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return lastErr
}
