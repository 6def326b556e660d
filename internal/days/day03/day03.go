// Package day03 solves Toboggan Trajectory: count trees hit while
// descending a cyclically repeating grid.
package day03

import (
	"strconv"

	"advent2020/internal/solve"
)

type slope struct {
	right, down int
}

// slopes for part 2, in puzzle order.
var slopes = []slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

// countTrees walks the grid with the given step, wrapping horizontally.
func countTrees(lines []string, s slope) int {
	trees := 0
	col := 0
	for row := 0; row < len(lines); row += s.down {
		line := lines[row]
		if line[col%len(line)] == '#' {
			trees++
		}
		col += s.right
	}
	return trees
}

func Part1(in *solve.Input) (string, error) {
	return strconv.Itoa(countTrees(in.Lines(), slope{3, 1})), nil
}

func Part2(in *solve.Input) (string, error) {
	product := 1
	for _, s := range slopes {
		product *= countTrees(in.Lines(), s)
	}
	return strconv.Itoa(product), nil
}
