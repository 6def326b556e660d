package day17

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/internal/solve"
)

const example = `.#.
..#
###`

func TestNeighborCounts(t *testing.T) {
	p, err := parsePocket(solve.FromString("#"), 3)
	require.NoError(t, err)

	n := 0
	p.neighbors(cell{0, 0, 0, 0}, func(cell) { n++ })
	assert.Equal(t, 26, n)

	p.dims = 4
	n = 0
	p.neighbors(cell{0, 0, 0, 0}, func(cell) { n++ })
	assert.Equal(t, 80, n)
}

func TestSingleStep3D(t *testing.T) {
	p, err := parsePocket(solve.FromString(example), 3)
	require.NoError(t, err)
	p.step()
	assert.Equal(t, 11, len(p.active))
}

func TestParts(t *testing.T) {
	in := solve.FromString(example)

	got1, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, "112", got1)

	got2, err := Part2(in)
	require.NoError(t, err)
	assert.Equal(t, "848", got2)
}
