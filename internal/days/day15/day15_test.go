package day15

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/internal/solve"
)

func TestPlayOpening(t *testing.T) {
	// First turns of 0,3,6: 0 3 6 0 3 3 1 0 4 0.
	want := []int{0, 3, 6, 0, 3, 3, 1, 0, 4, 0}
	for i, w := range want {
		got, err := play([]int{0, 3, 6}, i+1)
		require.NoError(t, err)
		assert.Equal(t, w, got, "turn %d", i+1)
	}
}

func TestPlay2020(t *testing.T) {
	cases := []struct {
		starting []int
		want     int
	}{
		{[]int{0, 3, 6}, 436},
		{[]int{1, 3, 2}, 1},
		{[]int{2, 1, 3}, 10},
		{[]int{1, 2, 3}, 27},
		{[]int{2, 3, 1}, 78},
		{[]int{3, 2, 1}, 438},
		{[]int{3, 1, 2}, 1836},
	}
	for _, tc := range cases {
		got, err := play(tc.starting, 2020)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v", tc.starting)
	}
}

func TestPlay30M(t *testing.T) {
	if testing.Short() {
		t.Skip("30 million turns")
	}
	got, err := play([]int{0, 3, 6}, 30000000)
	require.NoError(t, err)
	assert.Equal(t, 175594, got)
}

func TestPart1(t *testing.T) {
	got, err := Part1(solve.FromString("0,3,6"))
	require.NoError(t, err)
	assert.Equal(t, "436", got)
}

func TestEmpty(t *testing.T) {
	_, err := play(nil, 2020)
	assert.ErrorIs(t, err, solve.ErrBadInput)
}
