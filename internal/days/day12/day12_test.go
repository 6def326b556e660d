package day12

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/internal/solve"
)

const example = `F10
N3
F7
R90
F11`

func TestParse(t *testing.T) {
	moves, err := parse(solve.FromString("N1\nS2\nE3\nW4\nL90\nR180\nF5"))
	require.NoError(t, err)
	want := []move{
		{'N', 1}, {'N', -2}, {'E', 3}, {'E', -4}, {'R', -1}, {'R', 2}, {'F', 5},
	}
	assert.Equal(t, want, moves)
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{"X3", "N", "Nx", "R45"} {
		_, err := parse(solve.FromString(line))
		assert.ErrorIs(t, err, solve.ErrBadInput, "line %q", line)
	}
}

func TestParts(t *testing.T) {
	in := solve.FromString(example)

	got1, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, "25", got1)

	got2, err := Part2(in)
	require.NoError(t, err)
	assert.Equal(t, "286", got2)
}

func TestLeftTurnsMatchRightTurns(t *testing.T) {
	left, err := parse(solve.FromString("F1\nL90\nF1"))
	require.NoError(t, err)
	right, err := parse(solve.FromString("F1\nR270\nF1"))
	require.NoError(t, err)
	assert.Equal(t, sailByHeading(left), sailByHeading(right))
	assert.Equal(t, sailByWaypoint(left), sailByWaypoint(right))
}
