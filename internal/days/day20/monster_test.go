package day20

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sea holds one monster at the left edge of rows 5-7 plus three stray
// waves.
var sea = []string{
	"##..................",
	"....................",
	"....................",
	"....................",
	"....................",
	"..................#.",
	"#....##....##....###",
	".#..#..#..#..#..#...",
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"...#................",
}

func TestMonsterShape(t *testing.T) {
	require.Len(t, monsterOffsets, 15)
	for _, off := range monsterOffsets {
		assert.Less(t, off[0], monsterWidth)
		assert.Less(t, off[1], monsterHeight)
	}
}

func TestMarkMonsters(t *testing.T) {
	im, ok := parseImage(sea)
	require.True(t, ok)
	assert.Len(t, markMonsters(im), 15)
}

func TestMarkMonstersNone(t *testing.T) {
	im, ok := parseImage(strings.Split(strings.Repeat("....................\n", 19)+"....................", "\n"))
	require.True(t, ok)
	assert.Empty(t, markMonsters(im))
}

func TestRoughness(t *testing.T) {
	im, ok := parseImage(sea)
	require.True(t, ok)

	rough, found := roughness(im)
	require.True(t, found)
	assert.Equal(t, 3, rough)

	// The monster must also be found when the picture is flipped or
	// rotated.
	rough, found = roughness(im.flip().rotate())
	require.True(t, found)
	assert.Equal(t, 3, rough)
}
