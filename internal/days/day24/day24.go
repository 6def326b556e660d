// Package day24 solves Lobby Layout: flip hex floor tiles along walk
// directions, then run the daily flipping automaton.
package day24

import (
	"strconv"

	"advent2020/internal/solve"
)

const days = 100

// hex is an axial coordinate on the hex grid. East increases x; moving
// south-east increases y without changing x.
type hex struct {
	x, y int
}

// neighbors of a hex tile in axial coordinates.
var hexDirections = []hex{
	{1, 0}, {-1, 0}, // e, w
	{0, -1}, {-1, -1}, // ne, nw
	{1, 1}, {0, 1}, // se, sw
}

// parseWalk reduces one direction string to its destination tile.
func parseWalk(line string) (hex, error) {
	var pos hex
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case 'e':
			pos.x++
		case 'w':
			pos.x--
		case 'n':
			i++
			if i == len(line) {
				return hex{}, solve.BadInputf("dangling 'n' in %q", line)
			}
			pos.y--
			switch line[i] {
			case 'w':
				pos.x--
			case 'e':
			default:
				return hex{}, solve.BadInputf("bad direction %q in %q", line[i-1:i+1], line)
			}
		case 's':
			i++
			if i == len(line) {
				return hex{}, solve.BadInputf("dangling 's' in %q", line)
			}
			pos.y++
			switch line[i] {
			case 'e':
				pos.x++
			case 'w':
			default:
				return hex{}, solve.BadInputf("bad direction %q in %q", line[i-1:i+1], line)
			}
		default:
			return hex{}, solve.BadInputf("bad direction %q in %q", line[i], line)
		}
	}
	return pos, nil
}

// initialFloor flips each walked-to tile; an even number of flips
// leaves it white.
func initialFloor(in *solve.Input) (map[hex]bool, error) {
	black := map[hex]bool{}
	for _, line := range in.Lines() {
		pos, err := parseWalk(line)
		if err != nil {
			return nil, err
		}
		if black[pos] {
			delete(black, pos)
		} else {
			black[pos] = true
		}
	}
	return black, nil
}

// step flips tiles for one day: black with zero or more than two black
// neighbors turns white, white with exactly two turns black.
func step(black map[hex]bool) map[hex]bool {
	counts := map[hex]int{}
	for pos := range black {
		for _, d := range hexDirections {
			counts[hex{pos.x + d.x, pos.y + d.y}]++
		}
	}
	next := make(map[hex]bool, len(black))
	for pos, n := range counts {
		if n == 2 || (n == 1 && black[pos]) {
			next[pos] = true
		}
	}
	return next
}

func Part1(in *solve.Input) (string, error) {
	black, err := initialFloor(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(len(black)), nil
}

func Part2(in *solve.Input) (string, error) {
	black, err := initialFloor(in)
	if err != nil {
		return "", err
	}
	for i := 0; i < days; i++ {
		black = step(black)
	}
	return strconv.Itoa(len(black)), nil
}
