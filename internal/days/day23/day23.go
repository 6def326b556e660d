// Package day23 solves Crab Cups: the crab's cup-moving game, played
// on a successor ring so ten million moves stay cheap.
package day23

import (
	"strconv"
	"strings"

	"advent2020/internal/solve"
)

const (
	part2Cups  = 1000000
	part2Moves = 10000000
)

func parseCups(in *solve.Input) ([]int, error) {
	lines := in.Lines()
	if len(lines) == 0 {
		return nil, solve.BadInputf("empty input")
	}
	labels := strings.TrimSpace(lines[0])
	if labels == "" {
		return nil, solve.BadInputf("no cup labels")
	}
	cups := make([]int, 0, len(labels))
	seen := make([]bool, len(labels)+1)
	for _, c := range labels {
		if c < '1' || c > '9' {
			return nil, solve.BadInputf("bad cup label %q", c)
		}
		n := int(c - '0')
		if n > len(labels) || seen[n] {
			return nil, solve.BadInputf("cup labels must be a permutation of 1..%d", len(labels))
		}
		seen[n] = true
		cups = append(cups, n)
	}
	return cups, nil
}

// ring maps each cup label to the label clockwise of it. Index 0 is
// unused.
type ring []int

func newRing(cups []int, total int) ring {
	r := make(ring, total+1)
	prev := cups[0]
	for _, c := range cups[1:] {
		r[prev] = c
		prev = c
	}
	for c := len(cups) + 1; c <= total; c++ {
		r[prev] = c
		prev = c
	}
	r[prev] = cups[0]
	return r
}

// play runs the given number of moves starting at the first cup.
func (r ring) play(current, moves int) {
	max := len(r) - 1
	for i := 0; i < moves; i++ {
		a := r[current]
		b := r[a]
		c := r[b]

		dest := current - 1
		for dest == a || dest == b || dest == c || dest < 1 {
			if dest < 1 {
				dest = max
			} else {
				dest--
			}
		}

		r[current] = r[c]
		r[c] = r[dest]
		r[dest] = a
		current = r[current]
	}
}

// labelsAfterOne reads the ring clockwise from cup 1, excluding it.
func (r ring) labelsAfterOne() string {
	var b strings.Builder
	for c := r[1]; c != 1; c = r[c] {
		b.WriteByte(byte('0' + c))
	}
	return b.String()
}

func Part1(in *solve.Input) (string, error) {
	cups, err := parseCups(in)
	if err != nil {
		return "", err
	}
	r := newRing(cups, len(cups))
	r.play(cups[0], 100)
	return r.labelsAfterOne(), nil
}

// Part2 pads the ring to a million cups and multiplies the two cups
// clockwise of cup 1 after ten million moves.
func Part2(in *solve.Input) (string, error) {
	cups, err := parseCups(in)
	if err != nil {
		return "", err
	}
	r := newRing(cups, part2Cups)
	r.play(cups[0], part2Moves)
	first := r[1]
	second := r[first]
	return strconv.FormatInt(int64(first)*int64(second), 10), nil
}
