package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"doc-digest/internal/domain"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeTooLarge   ErrorType = "too_large"
	ErrorTypeProcessing ErrorType = "processing"
	ErrorTypeUpstream   ErrorType = "upstream"
	ErrorTypeInternal   ErrorType = "internal"
)

// User-facing messages. These are stable and safe to show to clients.
const (
	MsgNoFile             = "No file provided"
	MsgUnsupportedFormat  = "Unsupported file type. Allowed: PDF (.pdf), Word (.docx), PowerPoint (.pptx)."
	MsgInvalidDetailLevel = "Invalid detail level. Allowed: small, medium, large."
	MsgInvalidTask        = "Invalid task. Allowed: summary, qa."
	MsgFileTooLarge       = "File too large"
	MsgEmptyContent       = "Failed to extract text from the document"
	MsgUnreadable         = "Failed to read the document"
	MsgGenerationFailed   = "Generation failed."
	MsgInternal           = "Internal server error"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Cause:      cause,
	}
}

// NewTooLargeError creates an error for uploads over the configured limit
func NewTooLargeError(limit int64, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeTooLarge,
		Message:    MsgFileTooLarge,
		Details:    fmt.Sprintf("max %d bytes", limit),
		StatusCode: http.StatusRequestEntityTooLarge,
		Cause:      cause,
	}
}

// NewProcessingError creates a new processing error
func NewProcessingError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeProcessing,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
}

// NewUpstreamError creates an error for a failed call to the generation backend
func NewUpstreamError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeUpstream,
		Message:    message,
		StatusCode: http.StatusBadGateway,
		Cause:      cause,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// FromDomain translates a pipeline failure into an AppError with a stable
// message and HTTP status. Unknown errors become internal errors.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stderrors.Is(err, domain.ErrMissingInput):
		return NewValidationError(MsgNoFile, err)
	case stderrors.Is(err, domain.ErrUnsupportedFormat):
		return NewValidationError(MsgUnsupportedFormat, err)
	case stderrors.Is(err, domain.ErrInvalidDetailLevel):
		return NewValidationError(MsgInvalidDetailLevel, err)
	case stderrors.Is(err, domain.ErrInvalidTaskKind):
		return NewValidationError(MsgInvalidTask, err)
	case stderrors.Is(err, domain.ErrFileTooLarge):
		return &AppError{
			Type:       ErrorTypeTooLarge,
			Message:    MsgFileTooLarge,
			StatusCode: http.StatusRequestEntityTooLarge,
			Cause:      err,
		}
	case stderrors.Is(err, domain.ErrEmptyContent):
		return NewProcessingError(MsgEmptyContent, err)
	case stderrors.Is(err, domain.ErrUnreadableDocument):
		return NewProcessingError(MsgUnreadable, err)
	case stderrors.Is(err, domain.ErrGenerationFailed):
		msg := MsgGenerationFailed
		var genErr *domain.GenerationError
		if stderrors.As(err, &genErr) && genErr.Fallback != "" {
			msg = genErr.Fallback
		}
		return NewUpstreamError(msg, err)
	default:
		return NewInternalError(MsgInternal, err)
	}
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
