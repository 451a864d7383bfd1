package ports

import "errors"

var (
	// ErrNotFound marks every missing-entity failure, whatever entity it
	// wraps. Handlers translate it to HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks uniqueness violations, detected either by service
	// pre-check or by the store's constraint rejection. Handlers translate
	// it to HTTP 409, never a generic 500.
	ErrConflict = errors.New("conflict")
)

// NotFound wraps ErrNotFound with the entity name, e.g. "User not found".
func NotFound(entity string) error {
	return &notFoundError{msg: entity + " not found"}
}

// NotFoundMsg wraps ErrNotFound with a verbatim caller-facing message.
func NotFoundMsg(msg string) error {
	return &notFoundError{msg: msg}
}

// Conflict wraps ErrConflict with a caller-facing detail message.
func Conflict(detail string) error {
	return &conflictError{detail: detail}
}

type notFoundError struct{ msg string }

func (e *notFoundError) Error() string { return e.msg }
func (e *notFoundError) Unwrap() error { return ErrNotFound }

type conflictError struct{ detail string }

func (e *conflictError) Error() string { return e.detail }
func (e *conflictError) Unwrap() error { return ErrConflict }
