package requester

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by a binding wraps exactly one of
// these, so callers can classify with errors.Is without inspecting strings.
var (
	// ErrTransport covers network failures and non-2xx HTTP responses.
	ErrTransport = errors.New("transport failure")

	// ErrDecode covers response bodies that did not parse as the expected
	// JSON shape.
	ErrDecode = errors.New("response decode failure")

	// ErrEncode covers requests that could not be built from the supplied
	// input before any network I/O happened.
	ErrEncode = errors.New("request encode failure")
)

// Error tags an underlying failure with one of the three kinds. No failure is
// recoverable within this package; all are surfaced to the caller.
type Error struct {
	kind  error
	cause error
}

func newTransportError(cause error) *Error { return &Error{kind: ErrTransport, cause: cause} }
func newDecodeError(cause error) *Error   { return &Error{kind: ErrDecode, cause: cause} }
func newEncodeError(cause error) *Error   { return &Error{kind: ErrEncode, cause: cause} }

// Kind returns the failure kind: ErrTransport, ErrDecode or ErrEncode.
func (e *Error) Kind() error { return e.kind }

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.cause)
}

// Unwrap exposes both the kind and the underlying cause, so errors.Is matches
// the kind sentinels and errors.As reaches the cause.
func (e *Error) Unwrap() []error {
	return []error{e.kind, e.cause}
}

// StatusError is the cause wrapped into a transport failure when Discord
// answers with a non-2xx status. Body holds a truncated copy of the response
// body for diagnostics.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}
