// Package day06 solves Custom Customs: tally declaration form answers
// per group.
package day06

import (
	"strconv"

	"advent2020/internal/solve"
)

// anyone counts questions answered yes by at least one group member.
func anyone(group []string) int {
	seen := map[rune]bool{}
	for _, person := range group {
		for _, q := range person {
			seen[q] = true
		}
	}
	return len(seen)
}

// everyone counts questions answered yes by every group member.
func everyone(group []string) int {
	counts := map[rune]int{}
	for _, person := range group {
		for _, q := range person {
			counts[q]++
		}
	}
	n := 0
	for _, c := range counts {
		if c == len(group) {
			n++
		}
	}
	return n
}

func sum(in *solve.Input, count func([]string) int) string {
	total := 0
	for _, group := range in.Blocks() {
		total += count(group)
	}
	return strconv.Itoa(total)
}

func Part1(in *solve.Input) (string, error) {
	return sum(in, anyone), nil
}

func Part2(in *solve.Input) (string, error) {
	return sum(in, everyone), nil
}
