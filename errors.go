package moore

import "github.com/pkg/errors"

// Error kinds reported by this package. Every failure wraps one of these
// with call-site context; match them with errors.Is.
var (
	// ErrInvalidArgument reports a nil or deleted automaton reference, a
	// zero-length or mis-ranged request, or malformed bit widths.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResourceExhausted reports a bit-width so large that the
	// bit-to-word conversion would overflow.
	ErrResourceExhausted = errors.New("resource exhausted")
)
