package apperror

import "fmt"

// ValidationError signals missing or malformed client input. The message is
// safe to return to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError signals a lookup that matched nothing. It is reported to the
// client as a soft success ("status": "success" with an explanatory message
// and empty data), never as a hard failure.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

// StorageError wraps a data-store failure. Message is the generic client
// text ("Unable to Create QA"); Err is the underlying cause, kept
// server-side only.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorage(message string, err error) *StorageError {
	return &StorageError{Message: message, Err: err}
}
