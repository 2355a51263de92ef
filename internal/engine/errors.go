package engine

import "errors"

var (
	// ErrInvalidAction is returned when a trigger is not defined for the
	// current step
	ErrInvalidAction = errors.New("action not available in the current step")

	// ErrUnknownOption is returned for an option id the catalog does not know
	ErrUnknownOption = errors.New("unknown option")

	// ErrEmptyInput is returned when a required free-text answer is blank
	ErrEmptyInput = errors.New("an answer is required")

	// ErrSubmissionInFlight is returned when a submit arrives while another
	// submission is still running
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
)
