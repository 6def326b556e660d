// Package day01 solves Report Repair: find expense report entries that
// sum to 2020 and multiply them.
package day01

import (
	"sort"
	"strconv"

	"advent2020/internal/solve"
)

const target = 2020

func numbers(in *solve.Input) ([]int, error) {
	ns, err := in.Ints()
	if err != nil {
		return nil, err
	}
	sort.Ints(ns)
	return ns, nil
}

// findPair scans a sorted slice from both ends for two entries summing
// to target.
func findPair(sorted []int, target int) (int, int, bool) {
	lo, hi := 0, len(sorted)-1
	for lo < hi {
		switch sum := sorted[lo] + sorted[hi]; {
		case sum == target:
			return sorted[lo], sorted[hi], true
		case sum < target:
			lo++
		default:
			hi--
		}
	}
	return 0, 0, false
}

func findTriple(sorted []int, target int) (int, int, int, bool) {
	for i := 0; i+2 < len(sorted); i++ {
		low := sorted[i]
		if mid, high, ok := findPair(sorted[i+1:], target-low); ok {
			return low, mid, high, true
		}
	}
	return 0, 0, 0, false
}

func Part1(in *solve.Input) (string, error) {
	ns, err := numbers(in)
	if err != nil {
		return "", err
	}
	low, high, ok := findPair(ns, target)
	if !ok {
		return "", solve.NoSolutionf("no pair sums to %d", target)
	}
	return strconv.Itoa(low * high), nil
}

func Part2(in *solve.Input) (string, error) {
	ns, err := numbers(in)
	if err != nil {
		return "", err
	}
	low, mid, high, ok := findTriple(ns, target)
	if !ok {
		return "", solve.NoSolutionf("no triple sums to %d", target)
	}
	return strconv.Itoa(low * mid * high), nil
}
