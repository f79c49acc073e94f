package game

import "fmt"

// ErrorClass :
// The §7 error taxonomy. Every error the turn pipeline can produce is
// tagged with one of these so the orchestrator knows whether to carry
// on, abort and roll back, or retry.
type ErrorClass int

const (
	// UserInputError never mutates state; it surfaces as exactly one
	// message addressed to the offending empire and the turn proceeds.
	UserInputError ErrorClass = iota

	// EngineInvariantError means a validator let something through it
	// shouldn't have. Fatal: the whole turn is aborted and the
	// pre-turn snapshot is restored.
	EngineInvariantError

	// TransientError is a collaborator failure (persistence, notifier)
	// that is worth retrying with backoff before giving up.
	TransientError
)

// EngineError :
// A classified error carrying enough context to decide the
// orchestrator's response and, for UserInputError, to render a
// player-facing message.
type EngineError struct {
	Class ErrorClass
	Step  string
	Err   error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Invariant :
// Builds an EngineInvariantError tagged with the step that detected
// the violation.
func Invariant(step string, format string, args ...interface{}) error {
	return &EngineError{Class: EngineInvariantError, Step: step, Err: fmt.Errorf(format, args...)}
}

// Transient :
// Builds a TransientError tagged with the step that hit a collaborator
// failure.
func Transient(step string, err error) error {
	return &EngineError{Class: TransientError, Step: step, Err: err}
}

// ClassOf :
// Returns the ErrorClass of `err` if it is (or wraps) an EngineError,
// defaulting to EngineInvariantError for unrecognized errors since
// those represent a bug the caller didn't anticipate, not a
// known-benign condition.
func ClassOf(err error) ErrorClass {
	if ee, ok := err.(*EngineError); ok {
		return ee.Class
	}
	return EngineInvariantError
}
