// Package day17 solves Conway Cubes: the Game of Life in three and
// four dimensions, six cycles from a flat starting slice.
package day17

import (
	"strconv"

	"advent2020/internal/solve"
)

const cycles = 6

// cell is a position in up to four dimensions; unused axes stay zero.
type cell [4]int

// pocket is the set of active cells plus the dimensionality the
// automaton runs in.
type pocket struct {
	active map[cell]bool
	dims   int
}

func parsePocket(in *solve.Input, dims int) (*pocket, error) {
	p := &pocket{active: map[cell]bool{}, dims: dims}
	for y, line := range in.Lines() {
		for x, c := range line {
			switch c {
			case '#':
				p.active[cell{x, y, 0, 0}] = true
			case '.':
			default:
				return nil, solve.BadInputf("unexpected cell %q", c)
			}
		}
	}
	if len(p.active) == 0 {
		return nil, solve.BadInputf("no active cubes")
	}
	return p, nil
}

// neighbors calls fn for each of the 3^dims-1 neighboring cells.
func (p *pocket) neighbors(c cell, fn func(cell)) {
	deltas := []cell{{}}
	for axis := 0; axis < p.dims; axis++ {
		grown := make([]cell, 0, len(deltas)*3)
		for _, d := range deltas {
			for _, v := range [3]int{-1, 0, 1} {
				d[axis] = v
				grown = append(grown, d)
			}
		}
		deltas = grown
	}
	for _, d := range deltas {
		if d == (cell{}) {
			continue
		}
		n := c
		for axis := 0; axis < p.dims; axis++ {
			n[axis] += d[axis]
		}
		fn(n)
	}
}

// step advances one cycle. Only active cells and their neighbors can
// change state, so counting active neighbors per candidate suffices.
func (p *pocket) step() {
	counts := map[cell]int{}
	for c := range p.active {
		p.neighbors(c, func(n cell) {
			counts[n]++
		})
	}
	next := make(map[cell]bool, len(p.active))
	for c, n := range counts {
		if n == 3 || (n == 2 && p.active[c]) {
			next[c] = true
		}
	}
	p.active = next
}

func solvePart(in *solve.Input, dims int) (string, error) {
	p, err := parsePocket(in, dims)
	if err != nil {
		return "", err
	}
	for i := 0; i < cycles; i++ {
		p.step()
	}
	return strconv.Itoa(len(p.active)), nil
}

func Part1(in *solve.Input) (string, error) {
	return solvePart(in, 3)
}

func Part2(in *solve.Input) (string, error) {
	return solvePart(in, 4)
}
