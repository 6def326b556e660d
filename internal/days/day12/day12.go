// Package day12 solves Rain Risk: follow navigation instructions by
// ship heading, then by waypoint.
package day12

import (
	"strconv"

	"advent2020/internal/solve"
)

// move is a canonicalized instruction. South, West and Left are folded
// into negative North, East and Right during parsing; turns are in
// quarter steps.
type move struct {
	action byte // 'N', 'E', 'R' or 'F'
	value  int
}

func parse(in *solve.Input) ([]move, error) {
	lines := in.Lines()
	moves := make([]move, 0, len(lines))
	for _, line := range lines {
		if len(line) < 2 {
			return nil, solve.BadInputf("short instruction %q", line)
		}
		v, err := strconv.Atoi(line[1:])
		if err != nil {
			return nil, solve.BadInputf("bad value in %q", line)
		}
		m := move{value: v}
		switch line[0] {
		case 'N':
			m.action = 'N'
		case 'S':
			m.action, m.value = 'N', -v
		case 'E':
			m.action = 'E'
		case 'W':
			m.action, m.value = 'E', -v
		case 'F':
			m.action = 'F'
		case 'R', 'L':
			if v%90 != 0 {
				return nil, solve.BadInputf("turn %q is not a right angle", line)
			}
			m.action, m.value = 'R', v/90
			if line[0] == 'L' {
				m.value = -m.value
			}
		default:
			return nil, solve.BadInputf("unknown action in %q", line)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// headings in clockwise quarter-turn order starting east.
var headings = [4][2]int{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}

// sailByHeading moves the ship directly; F advances along the current
// heading. Returns the Manhattan distance from the origin.
func sailByHeading(moves []move) int {
	east, north := 0, 0
	facing := 0
	for _, m := range moves {
		switch m.action {
		case 'N':
			north += m.value
		case 'E':
			east += m.value
		case 'R':
			facing = ((facing+m.value)%4 + 4) % 4
		case 'F':
			east += headings[facing][0] * m.value
			north += headings[facing][1] * m.value
		}
	}
	return abs(east) + abs(north)
}

// sailByWaypoint moves a waypoint relative to the ship; F advances the
// ship toward it. The waypoint starts 10 east, 1 north.
func sailByWaypoint(moves []move) int {
	east, north := 0, 0
	wpEast, wpNorth := 10, 1
	for _, m := range moves {
		switch m.action {
		case 'N':
			wpNorth += m.value
		case 'E':
			wpEast += m.value
		case 'R':
			for i := 0; i < (m.value%4+4)%4; i++ {
				wpEast, wpNorth = wpNorth, -wpEast
			}
		case 'F':
			east += wpEast * m.value
			north += wpNorth * m.value
		}
	}
	return abs(east) + abs(north)
}

func Part1(in *solve.Input) (string, error) {
	moves, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(sailByHeading(moves)), nil
}

func Part2(in *solve.Input) (string, error) {
	moves, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(sailByWaypoint(moves)), nil
}
