package days

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/internal/solve"
)

func TestAllCoversEveryDay(t *testing.T) {
	all := All()
	require.Len(t, all, 25)
	for i, s := range all {
		assert.Equal(t, i+1, s.Day)
		assert.NotEmpty(t, s.Title)
		assert.NotNil(t, s.Part1, "day %d", s.Day)
		if s.Day < 25 {
			assert.NotNil(t, s.Part2, "day %d", s.Day)
		} else {
			assert.Nil(t, s.Part2, "day 25 has no part 2")
		}
	}
}

func TestAllBuildsRegistry(t *testing.T) {
	registry, err := solve.NewRegistry(All())
	require.NoError(t, err)
	assert.Equal(t, 25, registry.Len())

	days := registry.Days()
	require.Len(t, days, 25)
	assert.Equal(t, 1, days[0])
	assert.Equal(t, 25, days[24])
}
