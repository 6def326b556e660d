package runner

import "fmt"

// DayState is the runtime execution state of a single day.
type DayState string

const (
	DayPending   DayState = "PENDING"
	DayRunning   DayState = "RUNNING"
	DayCompleted DayState = "COMPLETED"
	DayFailed    DayState = "FAILED"
)

// IsTerminal reports whether the state is terminal (finished).
func IsTerminal(s DayState) bool {
	switch s {
	case DayCompleted, DayFailed:
		return true
	default:
		return false
	}
}

// RunState maps day number to its current DayState.
type RunState map[int]DayState

// Transition performs an atomic validated transition for a single day.
//
// The caller supplies the expected prior state (from) to make races
// observable. The map is mutated if and only if the transition is valid.
func Transition(state RunState, day int, from, to DayState) error {
	cur, ok := state[day]
	if !ok {
		return fmt.Errorf("unknown day in state: %d", day)
	}
	if cur != from {
		return fmt.Errorf("invalid transition for day %d: expected %s, got %s", day, from, cur)
	}
	if !isAllowedTransition(from, to) {
		return fmt.Errorf("disallowed transition for day %d: %s -> %s", day, from, to)
	}
	state[day] = to
	return nil
}

func isAllowedTransition(from, to DayState) bool {
	switch from {
	case DayPending:
		return to == DayRunning
	case DayRunning:
		return to == DayCompleted || to == DayFailed
	default:
		return false
	}
}
