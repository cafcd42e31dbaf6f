package jokes

import "errors"

// Error definitions for the jokes package.
var (
	// ErrLookupFailed is returned when no joke could be obtained from the
	// lookup service (network failure, timeout, bad status, malformed body).
	ErrLookupFailed = errors.New("joke lookup failed")

	// ErrEmptyJoke is returned when the service answered but the joke text is empty.
	ErrEmptyJoke = errors.New("joke service returned an empty joke")
)
