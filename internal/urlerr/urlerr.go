// Package urlerr provides the error types shared across exturl.
package urlerr

import (
	"fmt"
)

// Error is an error that belongs to a sentinel kind.
//
// The kind can be tested with errors.Is, and the cause is kept for
// errors.Unwrap.
type Error struct {
	kind    error
	from    error
	message string
}

// New creates a new Error of the given kind, wrapping from if it is
// not nil.
func New(kind error, from error, format string, args ...interface{}) Error {
	msg := fmt.Sprintf(format, args...)
	if from != nil {
		if msg != "" {
			msg += ": "
		}
		msg += from.Error()
	}

	return Error{
		kind:    kind,
		from:    from,
		message: msg,
	}
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.message
}

// Unwrap implements for errors.Unwrap.
func (e Error) Unwrap() error {
	return e.from
}

// Is implements for errors.Is. It reports whether err is the kind of
// this error.
func (e Error) Is(err error) bool {
	return e.kind == err
}
