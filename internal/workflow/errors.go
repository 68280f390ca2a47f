package workflow

import "errors"

var (
	// ErrForbidden means the caller's role or ownership check failed.
	ErrForbidden = errors.New("workflow: forbidden")

	// ErrInvalidTransition means the requested action is not valid for the
	// contract's current status. Usually indicates stale client state.
	ErrInvalidTransition = errors.New("workflow: invalid transition")

	// ErrStepNotActive means no workflow step is in progress, or the step
	// already transitioned under a concurrent action.
	ErrStepNotActive = errors.New("workflow: step not active")

	// ErrReasonRequired means reject/return was called without a reason.
	ErrReasonRequired = errors.New("workflow: reason required")

	// ErrNotFound means the contract or step does not exist.
	ErrNotFound = errors.New("workflow: not found")
)
