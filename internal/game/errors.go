package game

import "errors"

var (
	// ErrInvalidAction is returned when an action outside the legal set is
	// requested. The state machine never coerces an illegal action.
	ErrInvalidAction = errors.New("action not legal for current hand")

	// ErrInvalidConfiguration is returned for unusable rule or estimator
	// parameters.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrHandInProgress is returned by Settle before every hand has resolved
	// and the dealer has played.
	ErrHandInProgress = errors.New("hand not finished")
)
