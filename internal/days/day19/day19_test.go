package day19

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/internal/solve"
)

const example = `0: 4 1 5
1: 2 3 | 3 2
2: 4 4 | 5 5
3: 4 5 | 5 4
4: "a"
5: "b"

ababbb
bababa
abbbab
aaabbb
aaaabbb`

func TestParseRule(t *testing.T) {
	id, r, err := parseRule(`4: "a"`)
	require.NoError(t, err)
	assert.Equal(t, 4, id)
	assert.Equal(t, rule{kind: charRule, char: 'a'}, r)

	id, r, err = parseRule("1: 2 3 | 3 2")
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, altRule, r.kind)
	assert.Equal(t, []int{2, 3}, r.seqs[0])
	assert.Equal(t, []int{3, 2}, r.seqs[1])

	_, _, err = parseRule("bogus")
	assert.ErrorIs(t, err, solve.ErrBadInput)
}

func TestMatches(t *testing.T) {
	g, err := parse(solve.FromString(example))
	require.NoError(t, err)

	cases := map[string]bool{
		"ababbb":  true,
		"bababa":  false,
		"abbbab":  true,
		"aaabbb":  false,
		"aaaabbb": false,
	}
	for msg, want := range cases {
		assert.Equal(t, want, g.matches(msg), msg)
	}
}

func TestPart1(t *testing.T) {
	got, err := Part1(solve.FromString(example))
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

// Exercise the looping rule with a grammar where rule 42 is "a" and
// rule 31 is "b": matches are a^n b^m with n >= 2 and 1 <= m < n.
func TestMatchLoop(t *testing.T) {
	g := &grammar{rules: map[int]rule{
		0:  {kind: loopRule, a: 42, b: 31},
		42: {kind: charRule, char: 'a'},
		31: {kind: charRule, char: 'b'},
	}}
	cases := map[string]bool{
		"aab":    true,
		"ab":     false,
		"aa":     false,
		"aaabb":  true,
		"aaab":   true,
		"aabb":   false,
		"baab":   false,
		"aabba":  false,
		"aaaabb": true,
	}
	for msg, want := range cases {
		assert.Equal(t, want, g.matches(msg), msg)
	}
}
