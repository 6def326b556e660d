package day21

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent2020/internal/solve"
)

const example = `mxmxvkd kfcds sqjhc nhms (contains dairy, fish)
trh fvjkl sbzzf mxmxvkd (contains dairy)
sqjhc fvjkl (contains soy)
sqjhc mxmxvkd sbzzf (contains fish)`

func TestParseFood(t *testing.T) {
	f, err := parseFood("sqjhc fvjkl (contains soy)")
	require.NoError(t, err)
	assert.Equal(t, []string{"sqjhc", "fvjkl"}, f.ingredients)
	assert.Equal(t, []string{"soy"}, f.allergens)

	_, err = parseFood("sqjhc fvjkl")
	assert.ErrorIs(t, err, solve.ErrBadInput)
}

func TestCandidates(t *testing.T) {
	foods, err := parse(solve.FromString(example))
	require.NoError(t, err)

	cand := candidates(foods)
	assert.Equal(t, map[string]bool{"mxmxvkd": true}, cand["dairy"])
	assert.Equal(t, map[string]bool{"mxmxvkd": true, "sqjhc": true}, cand["fish"])
	assert.Equal(t, map[string]bool{"sqjhc": true, "fvjkl": true}, cand["soy"])
}

func TestParts(t *testing.T) {
	in := solve.FromString(example)

	got1, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, "5", got1)

	got2, err := Part2(in)
	require.NoError(t, err)
	assert.Equal(t, "mxmxvkd,sqjhc,fvjkl", got2)
}
