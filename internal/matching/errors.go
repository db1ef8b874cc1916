package matching

import "errors"

var (
	// ErrMatchNotFound is returned for an unknown match ID.
	ErrMatchNotFound = errors.New("match not found")
	// ErrNotAllowed is returned when the caller is not the lost item's reporter.
	ErrNotAllowed = errors.New("only the owner of the lost item can resolve the match")
	// ErrAlreadyResolved is returned for transitions out of a terminal state.
	ErrAlreadyResolved = errors.New("match already resolved")
	// ErrItemArchived is returned when approval finds either item already
	// archived, typically by a competing approval or a manual resolve.
	ErrItemArchived = errors.New("matched item is no longer active")
)
