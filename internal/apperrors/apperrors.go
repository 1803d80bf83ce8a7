// Package apperrors defines the failure taxonomy shared by the
// services and mapped onto HTTP status codes by the handlers.
package apperrors

import "fmt"

type Kind int

const (
	// KindUnexpected covers store or infrastructure failures. The
	// wrapped cause is logged, never surfaced to the caller.
	KindUnexpected Kind = iota
	KindInvalidInput
	KindNotFound
	KindForbidden
	KindLimitExceeded
)

// Error carries a classification plus a human-readable reason. For
// KindInvalidInput and KindLimitExceeded the reason is surfaced
// verbatim to the caller.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func LimitExceeded(message string) *Error {
	return &Error{Kind: KindLimitExceeded, Message: message}
}

func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Message: "internal error", Err: err}
}
