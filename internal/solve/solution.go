package solve

// MinDay and MaxDay bound the Advent of Code 2020 event.
const (
	MinDay = 1
	MaxDay = 25
)

// PartFunc computes one part of a day's puzzle from its input.
//
// The answer is returned as a string: most puzzles answer with a number,
// but some (day 21 part 2) answer with text, and the CLI treats all
// answers uniformly.
type PartFunc func(in *Input) (string, error)

// Solution is the immutable definition of one day's puzzle solution.
type Solution struct {
	// Day is the puzzle day, 1..25.
	Day int

	// Title is the puzzle's published name, for logs and reports.
	Title string

	Part1 PartFunc

	// Part2 is nil for day 25, which has no second puzzle.
	Part2 PartFunc
}

// Part selects Part1 or Part2 by number. Part numbers other than 1 or 2
// return nil.
func (s Solution) Part(n int) PartFunc {
	switch n {
	case 1:
		return s.Part1
	case 2:
		return s.Part2
	default:
		return nil
	}
}
