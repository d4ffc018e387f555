package errs

import "github.com/GregMSThompson/banks-directory/internal/models"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

type NotFoundError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

type ConflictError struct {
	ErrorMessage
}

// UnavailableError is returned by views that need loaded data while the
// directory is still loading or its fetch has failed.
type UnavailableError struct {
	ErrorMessage
	Phase models.Phase
}

type FetchReason string

const (
	FetchTransport FetchReason = "transport"
	FetchStatus    FetchReason = "status"
	FetchDecode    FetchReason = "decode"
	FetchRecord    FetchReason = "record"
)

// FetchError is the single failure kind of the directory download. Reason
// describes where it failed; it is not a retry classification.
type FetchError struct {
	ErrorMessage
	Reason FetchReason
	Cause  error
}

func (e *FetchError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *FetchError) Unwrap() error { return e.Cause }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewUnavailableError(phase models.Phase) *UnavailableError {
	msg := "bank directory is loading"
	if phase == models.PhaseFailed {
		msg = "bank directory failed to load"
	}
	return &UnavailableError{
		ErrorMessage: ErrorMessage{Message: msg},
		Phase:        phase,
	}
}

func NewFetchError(reason FetchReason, message string, cause error) *FetchError {
	return &FetchError{
		ErrorMessage: ErrorMessage{Message: message},
		Reason:       reason,
		Cause:        cause,
	}
}
