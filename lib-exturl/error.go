package exturl

import (
	"errors"
)

// The errors in the exturl library can check the error type via the
// errors.Is function.
var (
	// ErrInvalidURL is an error for if the URL cannot be parsed.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrMissingScheme is an error for if the URL has no scheme.
	ErrMissingScheme = errors.New("missing scheme in URL")

	// ErrInvalidScheme is an error for if a handler scheme is not a
	// valid URL scheme.
	ErrInvalidScheme = errors.New("invalid scheme")

	// ErrUnsupportedScheme is an error for if no handler is registered
	// for the scheme of the URL.
	ErrUnsupportedScheme = errors.New("unsupported scheme")

	// ErrUnsupportedURL is an error for if no factory opened a
	// connection and the handler has no fallback.
	ErrUnsupportedURL = errors.New("unsupported URL")

	// ErrDuplicateScheme is an error for if a handler is registered
	// for a scheme that already has one.
	ErrDuplicateScheme = errors.New("scheme is already registered")
)
