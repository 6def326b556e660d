// Package day20 solves Jurassic Jigsaw: reassemble satellite image
// tiles by their borders, then count sea monsters in the picture.
package day20

import (
	"math"
	"strconv"
	"strings"

	"advent2020/internal/solve"
)

type tile struct {
	id  int
	img image
}

func (t tile) edges() [4]uint {
	return [4]uint{t.img.edgeTop(), t.img.edgeRight(), t.img.edgeBottom(), t.img.edgeLeft()}
}

func parse(in *solve.Input) ([]tile, error) {
	blocks := in.Blocks()
	if len(blocks) == 0 {
		return nil, solve.BadInputf("no tiles")
	}
	tiles := make([]tile, 0, len(blocks))
	for _, block := range blocks {
		header := block[0]
		idStr, ok := strings.CutPrefix(header, "Tile ")
		if !ok || !strings.HasSuffix(idStr, ":") {
			return nil, solve.BadInputf("malformed tile header %q", header)
		}
		id, err := strconv.Atoi(strings.TrimSuffix(idStr, ":"))
		if err != nil {
			return nil, solve.BadInputf("bad tile id in %q", header)
		}
		img, ok := parseImage(block[1:])
		if !ok {
			return nil, solve.BadInputf("tile %d is not a square bitmap", id)
		}
		tiles = append(tiles, tile{id: id, img: img})
	}
	size := tiles[0].img.size
	for _, t := range tiles {
		if t.img.size != size {
			return nil, solve.BadInputf("tile %d size differs", t.id)
		}
	}
	return tiles, nil
}

// edgeCounts tallies each canonical edge value across all tiles. An
// edge seen once is on the picture's border.
func edgeCounts(tiles []tile) map[uint]int {
	counts := map[uint]int{}
	for _, t := range tiles {
		for _, e := range t.edges() {
			counts[canonical(e, t.img.size)]++
		}
	}
	return counts
}

// corners finds the four tiles with exactly two border edges, checking
// that the tile set forms a full square picture.
func corners(tiles []tile) ([]tile, error) {
	side := int(math.Sqrt(float64(len(tiles))))
	if side*side != len(tiles) {
		return nil, solve.BadInputf("%d tiles do not form a square", len(tiles))
	}
	counts := edgeCounts(tiles)

	var cornerTiles []tile
	borderTiles := 0
	for _, t := range tiles {
		unique := 0
		for _, e := range t.edges() {
			if counts[canonical(e, t.img.size)] == 1 {
				unique++
			}
		}
		switch unique {
		case 2:
			cornerTiles = append(cornerTiles, t)
		case 1:
			borderTiles++
		case 0:
		default:
			return nil, solve.BadInputf("tile %d has %d unmatched edges", t.id, unique)
		}
	}
	if len(cornerTiles) != 4 {
		return nil, solve.NoSolutionf("found %d corner tiles, want 4", len(cornerTiles))
	}
	if borderTiles != (side-2)*4 {
		return nil, solve.NoSolutionf("found %d border tiles, want %d", borderTiles, (side-2)*4)
	}
	return cornerTiles, nil
}

func Part1(in *solve.Input) (string, error) {
	tiles, err := parse(in)
	if err != nil {
		return "", err
	}
	cornerTiles, err := corners(tiles)
	if err != nil {
		return "", err
	}
	product := int64(1)
	for _, t := range cornerTiles {
		product *= int64(t.id)
	}
	return strconv.FormatInt(product, 10), nil
}

// assemble orients and places every tile. Matching edges are unique in
// real inputs, so a greedy left-to-right, top-to-bottom fill suffices.
func assemble(tiles []tile) ([][]image, error) {
	side := int(math.Sqrt(float64(len(tiles))))
	if side*side != len(tiles) {
		return nil, solve.BadInputf("%d tiles do not form a square", len(tiles))
	}
	counts := edgeCounts(tiles)
	width := tiles[0].img.size
	isBorder := func(e uint) bool {
		return counts[canonical(e, width)] == 1
	}

	grid := make([][]image, side)
	used := make([]bool, len(tiles))
	for r := range grid {
		grid[r] = make([]image, side)
		for c := range grid[r] {
			placed := false
		search:
			for i, t := range tiles {
				if used[i] {
					continue
				}
				for _, o := range t.img.orientations() {
					switch {
					case r == 0 && c == 0:
						if !isBorder(o.edgeTop()) || !isBorder(o.edgeLeft()) {
							continue
						}
					case c > 0:
						if o.edgeLeft() != grid[r][c-1].edgeRight() {
							continue
						}
					default:
						if o.edgeTop() != grid[r-1][c].edgeBottom() {
							continue
						}
					}
					grid[r][c] = o
					used[i] = true
					placed = true
					break search
				}
			}
			if !placed {
				return nil, solve.NoSolutionf("no tile fits at row %d, column %d", r, c)
			}
		}
	}
	return grid, nil
}

// mergeTiles strips each tile's border and pastes the interiors into
// one picture.
func mergeTiles(grid [][]image) image {
	side := len(grid)
	inner := grid[0][0].size - 2
	out := newImage(side * inner)
	for r, row := range grid {
		for c, img := range row {
			for y := 0; y < inner; y++ {
				for x := 0; x < inner; x++ {
					out.set(c*inner+x, r*inner+y, img.at(x+1, y+1))
				}
			}
		}
	}
	return out
}

func Part2(in *solve.Input) (string, error) {
	tiles, err := parse(in)
	if err != nil {
		return "", err
	}
	grid, err := assemble(tiles)
	if err != nil {
		return "", err
	}
	rough, ok := roughness(mergeTiles(grid))
	if !ok {
		return "", solve.NoSolutionf("no sea monsters in any orientation")
	}
	return strconv.Itoa(rough), nil
}
