package lib

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account inactive")
	ErrEmailUnverified    = errors.New("email unverified")
	ErrNoPendingLogin     = errors.New("no pending login")
	ErrCodeInvalid        = errors.New("code invalid or expired")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrTooManyRequests    = errors.New("too many requests")
)

// MapPgError translates low-level PostgreSQL errors to sentinel errors
func MapPgError(err error) error {
	if err == nil {
		return nil
	}

	switch sqlStateOf(err) {
	case "23505": // unique_violation
		return ErrConflict
	case "P0002": // no_data_found
		return ErrNotFound
	}

	return err
}

func sqlStateOf(err error) string {
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

// IsUniqueViolation reports whether the error is a duplicate-row conflict
func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrConflict) || sqlStateOf(err) == "23505"
}

// IsNotFound reports whether the error means no matching row
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// GetUserMessage maps internal errors to messages safe to show users
func GetUserMessage(err error) string {
	switch {
	case errors.Is(err, ErrConflict):
		return "An account with that username or email already exists"
	case errors.Is(err, ErrNotFound):
		return "The requested resource was not found"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, ErrExpiredToken):
		return "This link has expired"
	case errors.Is(err, ErrAccountInactive):
		return "Please verify your email address before logging in"
	case errors.Is(err, ErrEmailUnverified):
		return "Please verify your email address first"
	case errors.Is(err, ErrNoPendingLogin):
		return "Please log in again"
	case errors.Is(err, ErrCodeInvalid):
		return "That code is invalid or has expired"
	case errors.Is(err, ErrAlreadyVerified):
		return "This email address is already verified"
	case errors.Is(err, ErrTooManyRequests):
		return "Please wait before requesting another email"
	default:
		return "Something went wrong. Please try again"
	}
}

// GetDetailForLogging returns the raw error text for log fields
func GetDetailForLogging(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
