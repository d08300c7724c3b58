package api

import (
	"errors"
	"net/http"

	"github.com/arcanadaily/arcana-api/internal/api/shared"
	"github.com/arcanadaily/arcana-api/internal/domain"
	"github.com/arcanadaily/arcana-api/internal/generation"
	"github.com/arcanadaily/arcana-api/internal/service"
	"github.com/arcanadaily/arcana-api/internal/service/auth"
	"github.com/arcanadaily/arcana-api/internal/store"
)

// CodeUpgradeRequired is the machine-readable code attached to rejections
// that a premium subscription would lift.
const CodeUpgradeRequired = "upgrade_required"

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrPremiumRequired),
		errors.Is(err, service.ErrDailyLimitReached),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	// Conflict errors
	case errors.Is(err, service.ErrAlreadyDrawnToday),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrDrawExists):
		return http.StatusConflict

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrDrawNotFound),
		errors.Is(err, domain.ErrCardNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyMood),
		errors.Is(err, domain.ErrEmptyQuestion),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordTooLong),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Feature not configured
	case errors.Is(err, generation.ErrDisabled):
		return http.StatusServiceUnavailable

	// Upstream LLM failures
	case errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// errorCode returns the machine-readable code for err, or "" when none
// applies.
func errorCode(err error) string {
	if errors.Is(err, service.ErrPremiumRequired) ||
		errors.Is(err, service.ErrDailyLimitReached) {
		return CodeUpgradeRequired
	}
	return ""
}

// userMessage returns a client-safe message for err. Sentinel errors carry
// deliberately safe text; anything unexpected falls back to a generic
// message for its status class.
func userMessage(err error, status int) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrPremiumRequired):
		return "Premium subscription required"
	case errors.Is(err, service.ErrDailyLimitReached):
		return "Daily draw limit reached"
	case errors.Is(err, service.ErrAlreadyDrawnToday):
		return "Daily draw already completed"
	case errors.Is(err, store.ErrEmailExists):
		return "Email address is already registered"
	case errors.Is(err, store.ErrDrawNotFound):
		return "No draw found for that date"
	case errors.Is(err, domain.ErrCardNotFound):
		return "Unknown card"
	case errors.Is(err, generation.ErrDisabled):
		return "Enhanced interpretations are not available"
	case status == http.StatusBadRequest:
		return "Invalid request: " + err.Error()
	case status >= http.StatusInternalServerError:
		return "An internal error occurred"
	default:
		return err.Error()
	}
}

// HandleServiceError maps err to a status code and writes the sanitized
// error response, logging the underlying error at a level appropriate for
// the status class.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	opts := []shared.ResponseOption{}
	if code := errorCode(err); code != "" {
		opts = append(opts, shared.WithCode(code))
	}

	shared.RespondWithErrorAndLog(w, r, status, userMessage(err, status), err, opts...)
}
