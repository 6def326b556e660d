// Package day10 solves Adapter Array: joltage differences and adapter
// arrangement counting.
package day10

import (
	"sort"
	"strconv"

	"advent2020/internal/solve"
)

// chain returns the sorted adapter joltages with the charging outlet
// (0) prepended. The device adapter (max + 3) stays implicit.
func chain(in *solve.Input) ([]int, error) {
	ns, err := in.Ints()
	if err != nil {
		return nil, err
	}
	if len(ns) == 0 {
		return nil, solve.BadInputf("no adapters")
	}
	ns = append(ns, 0)
	sort.Ints(ns)
	return ns, nil
}

// differences tallies 1- and 3-jolt gaps along the full chain. The
// device always adds one 3-jolt gap.
func differences(sorted []int) (ones, threes int) {
	threes = 1
	for i := 1; i < len(sorted); i++ {
		switch sorted[i] - sorted[i-1] {
		case 1:
			ones++
		case 3:
			threes++
		}
	}
	return ones, threes
}

// arrangements counts the distinct adapter subsets that still bridge
// outlet to device. Paths to each adapter accumulate from the up to
// three adapters within reach below it.
func arrangements(sorted []int) int64 {
	ways := make([]int64, len(sorted))
	ways[0] = 1
	for i := 1; i < len(sorted); i++ {
		for j := i - 1; j >= 0 && sorted[i]-sorted[j] <= 3; j-- {
			ways[i] += ways[j]
		}
	}
	return ways[len(ways)-1]
}

func Part1(in *solve.Input) (string, error) {
	sorted, err := chain(in)
	if err != nil {
		return "", err
	}
	ones, threes := differences(sorted)
	return strconv.Itoa(ones * threes), nil
}

func Part2(in *solve.Input) (string, error) {
	sorted, err := chain(in)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(arrangements(sorted), 10), nil
}
