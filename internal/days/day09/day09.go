// Package day09 solves Encoding Error: spot the XMAS stream value that
// is not a sum of the preceding window, then find its weakness.
package day09

import (
	"sort"
	"strconv"

	"advent2020/internal/solve"
)

const preambleSize = 25

// hasPairSum reports whether two distinct window entries sum to target.
func hasPairSum(window []int, target int) bool {
	sorted := append([]int(nil), window...)
	sort.Ints(sorted)
	lo, hi := 0, len(sorted)-1
	for lo < hi {
		switch sum := sorted[lo] + sorted[hi]; {
		case sum == target:
			return true
		case sum < target:
			lo++
		default:
			hi--
		}
	}
	return false
}

// firstInvalid returns the first value not expressible as a pair sum
// from the preceding preamble-sized window.
func firstInvalid(ns []int, preamble int) (int, bool) {
	for i := preamble; i < len(ns); i++ {
		if !hasPairSum(ns[i-preamble:i], ns[i]) {
			return ns[i], true
		}
	}
	return 0, false
}

// weakness finds a contiguous run of at least two values summing to
// target and returns the run's min plus max.
func weakness(ns []int, target int) (int, bool) {
	sum := 0
	start := 0
	for end, n := range ns {
		sum += n
		for sum > target && start < end {
			sum -= ns[start]
			start++
		}
		if sum == target && end > start {
			run := ns[start : end+1]
			min, max := run[0], run[0]
			for _, v := range run[1:] {
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
			}
			return min + max, true
		}
	}
	return 0, false
}

func solvePart1(in *solve.Input, preamble int) (int, error) {
	ns, err := in.Ints()
	if err != nil {
		return 0, err
	}
	invalid, ok := firstInvalid(ns, preamble)
	if !ok {
		return 0, solve.NoSolutionf("every value is a valid pair sum")
	}
	return invalid, nil
}

func Part1(in *solve.Input) (string, error) {
	invalid, err := solvePart1(in, preambleSize)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(invalid), nil
}

func Part2(in *solve.Input) (string, error) {
	invalid, err := solvePart1(in, preambleSize)
	if err != nil {
		return "", err
	}
	ns, err := in.Ints()
	if err != nil {
		return "", err
	}
	weak, ok := weakness(ns, invalid)
	if !ok {
		return "", solve.NoSolutionf("no contiguous run sums to %d", invalid)
	}
	return strconv.Itoa(weak), nil
}
