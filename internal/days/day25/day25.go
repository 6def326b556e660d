// Package day25 solves Combo Breaker: recover the card's loop size by
// brute force and derive the door's encryption key. There is no part 2.
package day25

import (
	"strconv"

	"advent2020/internal/solve"
)

const (
	subject = 7
	modulus = 20201227
)

// loopSize finds the exponent that transforms the subject number into
// the public key.
func loopSize(publicKey int64) (int, error) {
	value := int64(1)
	for n := 0; n < modulus; n++ {
		if value == publicKey {
			return n, nil
		}
		value = value * subject % modulus
	}
	return 0, solve.NoSolutionf("no loop size yields public key %d", publicKey)
}

// transform applies the handshake operation loop-size times.
func transform(subjectNumber int64, loops int) int64 {
	value := int64(1)
	for i := 0; i < loops; i++ {
		value = value * subjectNumber % modulus
	}
	return value
}

func Part1(in *solve.Input) (string, error) {
	lines := in.Lines()
	if len(lines) != 2 {
		return "", solve.BadInputf("expected two public keys, got %d lines", len(lines))
	}
	cardKey, err := strconv.ParseInt(lines[0], 10, 64)
	if err != nil {
		return "", solve.BadInputf("bad card key %q", lines[0])
	}
	doorKey, err := strconv.ParseInt(lines[1], 10, 64)
	if err != nil {
		return "", solve.BadInputf("bad door key %q", lines[1])
	}
	loops, err := loopSize(cardKey)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(transform(doorKey, loops), 10), nil
}
