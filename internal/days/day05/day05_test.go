package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/internal/solve"
)

func TestSeatID(t *testing.T) {
	cases := []struct {
		pass string
		want int
	}{
		{"FBFBBFFRLR", 357},
		{"BFFFBBFRRR", 567},
		{"FFFBBBFRRR", 119},
		{"BBFFBBFRLL", 820},
	}
	for _, tc := range cases {
		got, err := seatID(tc.pass)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.pass)
	}
}

func TestSeatIDBadPass(t *testing.T) {
	_, err := seatID("FBFXBFFRLR")
	assert.ErrorIs(t, err, solve.ErrBadInput)
}

func TestPart1(t *testing.T) {
	in := solve.FromString("FBFBBFFRLR\nBFFFBBFRRR\nFFFBBBFRRR\nBBFFBBFRLL")
	got, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, "820", got)
}

func TestPart2(t *testing.T) {
	// Seat ids 5, 6, 8 and 9 leave 7 free.
	got, err := Part2(solve.FromString("FFFFFFFRLR\nFFFFFFFRRF\nFFFFFFBFFF\nFFFFFFBFFR"))
	require.NoError(t, err)
	assert.Equal(t, "7", got)
}

func TestPart2NoGap(t *testing.T) {
	_, err := Part2(solve.FromString("FFFFFFFRLR\nFFFFFFFRRF"))
	assert.ErrorIs(t, err, solve.ErrNoSolution)
}
