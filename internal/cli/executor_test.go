package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"advent2020/internal/runner"
	"advent2020/internal/solve"
)

func TestTranslateResults(t *testing.T) {
	completed := runner.Result{Day: 1, State: runner.DayCompleted}
	inputFail := runner.Result{
		Day:   2,
		State: runner.DayFailed,
		Err:   &solve.InputError{Path: "data/day02/input.txt", Err: errors.New("no such file")},
	}
	solveFail := runner.Result{
		Day:   3,
		State: runner.DayFailed,
		Err:   solve.NoSolutionf("nothing"),
	}

	cases := []struct {
		name    string
		results []runner.Result
		want    int
	}{
		{"empty", nil, ExitSuccess},
		{"all completed", []runner.Result{completed}, ExitSuccess},
		{"input failure only", []runner.Result{completed, inputFail}, ExitInputError},
		{"solve failure only", []runner.Result{completed, solveFail}, ExitSolveFailure},
		{"solve failure beats input failure", []runner.Result{inputFail, solveFail}, ExitSolveFailure},
		{"order does not matter", []runner.Result{solveFail, inputFail}, ExitSolveFailure},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, translateResults(tc.results), tc.name)
	}
}

func TestPrintResults(t *testing.T) {
	results := []runner.Result{
		{Day: 1, State: runner.DayCompleted, Part1: "10", Part2: "20"},
		{Day: 25, State: runner.DayCompleted, Part1: "99"},
		{Day: 3, State: runner.DayFailed, Err: errors.New("part 1: bad")},
	}

	var out bytes.Buffer
	printResults(&out, 0, results)
	assert.Equal(t,
		"day 01 part 1: 10\nday 01 part 2: 20\nday 25 part 1: 99\nday 03: error: part 1: bad\n",
		out.String())

	out.Reset()
	printResults(&out, 2, results)
	assert.Equal(t, "day 01 part 2: 20\nday 03: error: part 1: bad\n", out.String())
}
