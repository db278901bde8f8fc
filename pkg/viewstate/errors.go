package viewstate

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagNotFound marks operations that named a row or panel key the
	// controller does not hold.
	ErrTagNotFound = goerr.NewTag("not_found")
	// ErrTagInvalidState marks values that cannot be applied to the current
	// state, such as an indeterminate tri-state where a boolean is required.
	ErrTagInvalidState = goerr.NewTag("invalid_state")
)

// IsNotFound reports whether err carries ErrTagNotFound.
func IsNotFound(err error) bool {
	return goerr.HasTag(err, ErrTagNotFound)
}

// IsInvalidState reports whether err carries ErrTagInvalidState.
func IsInvalidState(err error) bool {
	return goerr.HasTag(err, ErrTagInvalidState)
}
