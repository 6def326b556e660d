// Package day05 solves Binary Boarding: boarding passes are binary
// numbers in disguise.
package day05

import (
	"sort"
	"strconv"

	"advent2020/internal/solve"
)

// seatID folds a boarding pass into its seat number. B and R are one
// bits, F and L are zero bits.
func seatID(pass string) (int, error) {
	id := 0
	for _, c := range pass {
		id <<= 1
		switch c {
		case 'B', 'R':
			id |= 1
		case 'F', 'L':
		default:
			return 0, solve.BadInputf("unexpected character %q in pass %q", c, pass)
		}
	}
	return id, nil
}

func seatIDs(in *solve.Input) ([]int, error) {
	lines := in.Lines()
	ids := make([]int, 0, len(lines))
	for _, line := range lines {
		id, err := seatID(line)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func Part1(in *solve.Input) (string, error) {
	ids, err := seatIDs(in)
	if err != nil {
		return "", err
	}
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return strconv.Itoa(max), nil
}

// Part2 finds the single unoccupied seat with both neighbors present.
func Part2(in *solve.Input) (string, error) {
	ids, err := seatIDs(in)
	if err != nil {
		return "", err
	}
	sort.Ints(ids)
	for i := 1; i < len(ids); i++ {
		if ids[i]-ids[i-1] == 2 {
			return strconv.Itoa(ids[i] - 1), nil
		}
	}
	return "", solve.NoSolutionf("no gap in seat ids")
}
