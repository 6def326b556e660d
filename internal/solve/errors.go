package solve

import (
	"errors"
	"fmt"
)

var (
	// ErrBadInput marks puzzle text that does not conform to the day's
	// expected format.
	ErrBadInput = errors.New("malformed input")

	// ErrNoSolution marks well-formed input for which the puzzle's search
	// has no answer.
	ErrNoSolution = errors.New("no solution found")
)

// SolveError wraps a day-level failure with its deterministic kind.
type SolveError struct {
	Kind error
	Msg  string
}

func (e *SolveError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *SolveError) Unwrap() error { return e.Kind }

// BadInputf builds an ErrBadInput-kinded error.
func BadInputf(format string, args ...any) error {
	return &SolveError{Kind: ErrBadInput, Msg: fmt.Sprintf(format, args...)}
}

// NoSolutionf builds an ErrNoSolution-kinded error.
func NoSolutionf(format string, args ...any) error {
	return &SolveError{Kind: ErrNoSolution, Msg: fmt.Sprintf(format, args...)}
}

// InputError reports that a day's input file could not be read at all.
// It is classified separately from solve failures so the CLI can map it
// to its own exit code.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("reading input %s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
