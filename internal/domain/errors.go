package domain

import "errors"

// Failure kinds. Every pipeline failure wraps exactly one of these.
var (
	ErrMissingInput       = errors.New("missing input")
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrEmptyContent       = errors.New("empty content")
	ErrUnreadableDocument = errors.New("unreadable document")
	ErrGenerationFailed   = errors.New("generation failed")
	ErrInvalidDetailLevel = errors.New("invalid detail level")
	ErrInvalidTaskKind    = errors.New("invalid task kind")
	ErrFileTooLarge       = errors.New("file too large")
)

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// GenerationError reports that the backend produced no reply. Fallback is the
// fixed, user-facing text for the task that failed.
type GenerationError struct {
	Fallback string
	Cause    error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return "generation failed: " + e.Cause.Error()
	}
	return "generation failed"
}

func (e *GenerationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrGenerationFailed}
	}
	return []error{ErrGenerationFailed, e.Cause}
}
