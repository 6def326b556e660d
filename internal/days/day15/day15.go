// Package day15 solves Rambunctious Recitation: the elves' memory game.
package day15

import (
	"strconv"

	"advent2020/internal/solve"
)

// play returns the nth number spoken (1-indexed) starting from the
// given numbers. Spoken values never reach n, so a flat slice indexed
// by value records the turn each number was last spoken.
func play(starting []int, n int) (int, error) {
	if len(starting) == 0 {
		return 0, solve.BadInputf("no starting numbers")
	}
	if n <= len(starting) {
		return starting[n-1], nil
	}
	// Numbers spoken after the opening are gaps between turns, so they
	// stay below n; only the starting numbers can exceed it.
	size := n
	for _, v := range starting {
		if v >= size {
			size = v + 1
		}
	}
	lastSpoken := make([]int32, size)
	for turn, v := range starting[:len(starting)-1] {
		lastSpoken[v] = int32(turn + 1)
	}
	current := starting[len(starting)-1]
	for turn := len(starting); turn < n; turn++ {
		prev := lastSpoken[current]
		lastSpoken[current] = int32(turn)
		if prev == 0 {
			current = 0
		} else {
			current = turn - int(prev)
		}
	}
	return current, nil
}

func solvePart(in *solve.Input, n int) (string, error) {
	starting, err := in.CommaInts()
	if err != nil {
		return "", err
	}
	spoken, err := play(starting, n)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(spoken), nil
}

func Part1(in *solve.Input) (string, error) {
	return solvePart(in, 2020)
}

func Part2(in *solve.Input) (string, error) {
	return solvePart(in, 30000000)
}
