package day07

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/internal/solve"
)

const example = `light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.`

const example2 = `shiny gold bags contain 2 dark red bags.
dark red bags contain 2 dark orange bags.
dark orange bags contain 2 dark yellow bags.
dark yellow bags contain 2 dark green bags.
dark green bags contain 2 dark blue bags.
dark blue bags contain 2 dark violet bags.
dark violet bags contain no other bags.`

// reversed returns the example with its lines in reverse order; rule
// order must not matter.
func reversed(s string) string {
	lines := strings.Split(s, "\n")
	sort.Sort(sort.Reverse(sort.StringSlice(lines)))
	return strings.Join(lines, "\n")
}

func TestParseRule(t *testing.T) {
	color, contents, err := parseRule("light red bags contain 1 bright white bag, 2 muted yellow bags.")
	require.NoError(t, err)
	assert.Equal(t, "light red", color)
	assert.Equal(t, []content{{1, "bright white"}, {2, "muted yellow"}}, contents)

	color, contents, err = parseRule("faded blue bags contain no other bags.")
	require.NoError(t, err)
	assert.Equal(t, "faded blue", color)
	assert.Empty(t, contents)

	_, _, err = parseRule("not a rule")
	assert.ErrorIs(t, err, solve.ErrBadInput)
}

func TestContainers(t *testing.T) {
	for _, input := range []string{example, reversed(example)} {
		got, err := Part1(solve.FromString(input))
		require.NoError(t, err)
		assert.Equal(t, "4", got)
	}
}

func TestContained(t *testing.T) {
	got, err := Part2(solve.FromString(example))
	require.NoError(t, err)
	assert.Equal(t, "32", got)

	got, err = Part2(solve.FromString(example2))
	require.NoError(t, err)
	assert.Equal(t, "126", got)
}
