// Package day02 solves Password Philosophy: validate passwords against
// their stated policies.
package day02

import (
	"strconv"
	"strings"

	"advent2020/internal/solve"
)

// policy is one parsed line: "1-3 a: abcde".
type policy struct {
	min, max int
	char     byte
	password string
}

func parseLine(line string) (policy, error) {
	rule, password, ok := strings.Cut(line, ": ")
	if !ok {
		return policy{}, solve.BadInputf("missing password separator in %q", line)
	}
	bounds, char, ok := strings.Cut(rule, " ")
	if !ok || len(char) != 1 {
		return policy{}, solve.BadInputf("missing policy character in %q", line)
	}
	minStr, maxStr, ok := strings.Cut(bounds, "-")
	if !ok {
		return policy{}, solve.BadInputf("missing bounds in %q", line)
	}
	min, err := strconv.Atoi(minStr)
	if err != nil {
		return policy{}, solve.BadInputf("bad lower bound in %q", line)
	}
	max, err := strconv.Atoi(maxStr)
	if err != nil {
		return policy{}, solve.BadInputf("bad upper bound in %q", line)
	}
	return policy{min: min, max: max, char: char[0], password: password}, nil
}

func parse(in *solve.Input) ([]policy, error) {
	lines := in.Lines()
	out := make([]policy, 0, len(lines))
	for _, line := range lines {
		p, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// validCount applies the sled-rental policy: the character must occur
// between min and max times.
func validCount(p policy) bool {
	n := strings.Count(p.password, string(p.char))
	return n >= p.min && n <= p.max
}

// validPosition applies the Toboggan policy: exactly one of positions
// min and max (1-indexed) holds the character.
func validPosition(p policy) bool {
	first := p.min-1 < len(p.password) && p.password[p.min-1] == p.char
	second := p.max-1 < len(p.password) && p.password[p.max-1] == p.char
	return first != second
}

func countValid(ps []policy, valid func(policy) bool) int {
	n := 0
	for _, p := range ps {
		if valid(p) {
			n++
		}
	}
	return n
}

func Part1(in *solve.Input) (string, error) {
	ps, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(countValid(ps, validCount)), nil
}

func Part2(in *solve.Input) (string, error) {
	ps, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(countValid(ps, validPosition)), nil
}
