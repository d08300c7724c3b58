package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when interpretation generation fails
	// for any general reason
	ErrGenerationFailed = errors.New("failed to generate interpretation")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed
	// or is empty
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to
	// safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might
	// resolve on retry
	ErrTransientFailure = errors.New("transient error during interpretation generation")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrDisabled is returned when no LLM backend is configured; enhanced
	// interpretations are an optional feature
	ErrDisabled = errors.New("interpretation generation is not configured")
)
