package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrPrecondition marks a step that ran without the selection it needs.
	ErrPrecondition = errors.New("precondition failed")
	ErrNoOptions    = errors.New("no options available")
	// ErrAborted reports that the user interrupted the wizard.
	ErrAborted = errors.New("aborted by user")
)
