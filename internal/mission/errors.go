package mission

import "errors"

var (
	// ErrEmptyBank is returned when an engine is built over no questions.
	ErrEmptyBank = errors.New("question bank is empty")

	// ErrEmptyCommander is returned when the commander name is blank.
	ErrEmptyCommander = errors.New("commander name is required")

	// ErrInvalidPhase is returned when an event does not apply to the
	// current phase.
	ErrInvalidPhase = errors.New("event not valid in current phase")

	// ErrNotFound is returned when the state's indices do not address a
	// question. It signals a sequencing defect in the caller.
	ErrNotFound = errors.New("question not found")

	// ErrStale is returned for a deferred transition scheduled by a mission
	// that has since been restarted.
	ErrStale = errors.New("stale mission event")

	// ErrNotNumeric is returned when an answer cannot be parsed as a number.
	ErrNotNumeric = errors.New("answer is not a number")
)
