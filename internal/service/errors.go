package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for
// with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped with fmt.Errorf and %w
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrInvalidCredentials indicates the email/password pair did not match
	// a registered account. API layer should map this to HTTP 401.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPremiumRequired indicates the operation is limited to premium
	// accounts. API layer should map this to HTTP 403 with an upgrade hint.
	ErrPremiumRequired = errors.New("premium subscription required")

	// ErrAlreadyDrawnToday indicates a draw of record already exists for the
	// account today. The existing draw accompanies the error so callers can
	// replay it. API layer should map this to HTTP 409.
	ErrAlreadyDrawnToday = errors.New("daily draw already completed")

	// ErrDailyLimitReached indicates the account exhausted its daily draw
	// allowance. API layer should map this to HTTP 403 with an upgrade hint.
	ErrDailyLimitReached = errors.New("daily draw limit reached")
)
