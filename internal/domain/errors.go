// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyMood is returned when a draw is attempted without a mood.
	ErrEmptyMood = errors.New("mood cannot be empty")

	// ErrEmptyQuestion is returned when a draw is attempted with an empty
	// question after trimming whitespace.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrCardNotFound is returned when a card ID is outside the catalog.
	ErrCardNotFound = errors.New("card not found in catalog")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
