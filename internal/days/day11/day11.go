// Package day11 solves Seating System: a cellular automaton over a
// ferry seat layout, run to its fixed point.
package day11

import (
	"strconv"
	"strings"

	"advent2020/internal/solve"
)

const (
	floor    = '.'
	empty    = 'L'
	occupied = '#'
)

type grid struct {
	w, h  int
	cells []byte
}

func parseGrid(in *solve.Input) (*grid, error) {
	lines := in.Lines()
	if len(lines) == 0 {
		return nil, solve.BadInputf("empty layout")
	}
	g := &grid{w: len(lines[0]), h: len(lines)}
	g.cells = make([]byte, 0, g.w*g.h)
	for _, line := range lines {
		if len(line) != g.w {
			return nil, solve.BadInputf("ragged layout: line %q", line)
		}
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case floor, empty, occupied:
			default:
				return nil, solve.BadInputf("unexpected cell %q", line[i])
			}
		}
		g.cells = append(g.cells, line...)
	}
	return g, nil
}

func (g *grid) at(x, y int) byte {
	return g.cells[y*g.w+x]
}

func (g *grid) String() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.Write(g.cells[y*g.w : (y+1)*g.w])
	}
	return b.String()
}

func (g *grid) occupiedCount() int {
	n := 0
	for _, c := range g.cells {
		if c == occupied {
			n++
		}
	}
	return n
}

var directions = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// adjacentOccupied counts occupied seats in the eight neighboring cells.
func adjacentOccupied(g *grid, x, y int) int {
	n := 0
	for _, d := range directions {
		nx, ny := x+d[0], y+d[1]
		if nx >= 0 && nx < g.w && ny >= 0 && ny < g.h && g.at(nx, ny) == occupied {
			n++
		}
	}
	return n
}

// visibleOccupied counts occupied seats along each of the eight rays,
// stopping at the first seat either way.
func visibleOccupied(g *grid, x, y int) int {
	n := 0
	for _, d := range directions {
		nx, ny := x+d[0], y+d[1]
		for nx >= 0 && nx < g.w && ny >= 0 && ny < g.h {
			if c := g.at(nx, ny); c != floor {
				if c == occupied {
					n++
				}
				break
			}
			nx += d[0]
			ny += d[1]
		}
	}
	return n
}

type rules struct {
	count     func(*grid, int, int) int
	tolerance int
}

var (
	adjacentRules = rules{count: adjacentOccupied, tolerance: 4}
	visibleRules  = rules{count: visibleOccupied, tolerance: 5}
)

// step applies one round of the rules, returning the next grid and
// whether anything changed.
func step(g *grid, r rules) (*grid, bool) {
	next := &grid{w: g.w, h: g.h, cells: make([]byte, len(g.cells))}
	changed := false
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := g.at(x, y)
			switch {
			case c == empty && r.count(g, x, y) == 0:
				c = occupied
				changed = true
			case c == occupied && r.count(g, x, y) >= r.tolerance:
				c = empty
				changed = true
			}
			next.cells[y*g.w+x] = c
		}
	}
	return next, changed
}

func stabilize(g *grid, r rules) *grid {
	for {
		next, changed := step(g, r)
		if !changed {
			return g
		}
		g = next
	}
}

func solvePart(in *solve.Input, r rules) (string, error) {
	g, err := parseGrid(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(stabilize(g, r).occupiedCount()), nil
}

func Part1(in *solve.Input) (string, error) {
	return solvePart(in, adjacentRules)
}

func Part2(in *solve.Input) (string, error) {
	return solvePart(in, visibleRules)
}
