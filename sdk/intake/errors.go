package intake

import "errors"

// ErrorKind classifies client failures so callers can decide whether a
// retry or a fresh user action is appropriate.
type ErrorKind string

const (
	// KindValidation means the input was rejected locally, before any
	// network call was made.
	KindValidation ErrorKind = "validation"
	// KindNetwork means the request never produced a usable response.
	KindNetwork ErrorKind = "network"
	// KindBackend means the server answered with an application error.
	KindBackend ErrorKind = "backend"
)

// Error is the client error type carrying a failure kind.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func newNetworkError(msg string, err error) *Error {
	return &Error{Kind: KindNetwork, Message: msg, Err: err}
}

func newBackendError(msg string) *Error {
	return &Error{Kind: KindBackend, Message: msg}
}

// KindOf returns the kind of err, or an empty string if err is not a
// client Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
