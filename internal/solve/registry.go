package solve

import (
	"fmt"
	"sort"
)

// Registry is the deterministic set of registered solutions, keyed by day.
//
// Registration is explicit (no init-time side effects): the full solution
// table is passed to NewRegistry once, so the set of days is identical on
// every run and enumeration order is always ascending.
type Registry struct {
	byDay map[int]Solution
}

// NewRegistry validates and indexes the given solutions.
//
// Rejected: day numbers outside [MinDay, MaxDay], duplicate days, and
// solutions missing part 1. Part 2 may be nil: day 25 has no second
// puzzle.
func NewRegistry(solutions []Solution) (*Registry, error) {
	byDay := make(map[int]Solution, len(solutions))
	for _, s := range solutions {
		if s.Day < MinDay || s.Day > MaxDay {
			return nil, fmt.Errorf("solution day %d out of range [%d, %d]", s.Day, MinDay, MaxDay)
		}
		if _, dup := byDay[s.Day]; dup {
			return nil, fmt.Errorf("duplicate solution for day %d", s.Day)
		}
		if s.Part1 == nil {
			return nil, fmt.Errorf("day %d: part 1 must be defined", s.Day)
		}
		byDay[s.Day] = s
	}
	return &Registry{byDay: byDay}, nil
}

// Lookup returns the solution for a day, if registered.
func (r *Registry) Lookup(day int) (Solution, bool) {
	s, ok := r.byDay[day]
	return s, ok
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.byDay))
	for d := range r.byDay {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Len reports the number of registered days.
func (r *Registry) Len() int { return len(r.byDay) }
