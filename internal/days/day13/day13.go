// Package day13 solves Shuttle Search: earliest bus, then the CRT
// timestamp aligning every bus with its schedule offset.
package day13

import (
	"strconv"
	"strings"

	"advent2020/internal/solve"
)

// bus is an in-service bus line and its position in the schedule.
type bus struct {
	id     int64
	offset int64
}

func parse(in *solve.Input) (depart int64, buses []bus, err error) {
	lines := in.Lines()
	if len(lines) < 2 {
		return 0, nil, solve.BadInputf("expected two lines, got %d", len(lines))
	}
	depart, err = strconv.ParseInt(lines[0], 10, 64)
	if err != nil {
		return 0, nil, solve.BadInputf("bad departure time %q", lines[0])
	}
	for i, field := range strings.Split(lines[1], ",") {
		if field == "x" {
			continue
		}
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return 0, nil, solve.BadInputf("bad bus id %q", field)
		}
		buses = append(buses, bus{id: id, offset: int64(i)})
	}
	if len(buses) == 0 {
		return 0, nil, solve.BadInputf("no buses in service")
	}
	return depart, buses, nil
}

// earliest picks the bus with the shortest wait after depart.
func earliest(depart int64, buses []bus) (bus, int64) {
	best := buses[0]
	bestWait := (best.id - depart%best.id) % best.id
	for _, b := range buses[1:] {
		if wait := (b.id - depart%b.id) % b.id; wait < bestWait {
			best, bestWait = b, wait
		}
	}
	return best, bestWait
}

// egcd returns gcd(a, b) and Bezout coefficients x, y with ax+by = gcd.
func egcd(a, b int64) (g, x, y int64) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := egcd(b%a, a)
	return g, y1 - (b/a)*x1, x1
}

// modInverse returns a^-1 mod m; bus ids are prime so the inverse
// always exists.
func modInverse(a, m int64) int64 {
	_, x, _ := egcd(a%m, m)
	return ((x % m) + m) % m
}

// alignment solves t ≡ -offset (mod id) for all buses by the Chinese
// remainder theorem.
func alignment(buses []bus) int64 {
	var product int64 = 1
	for _, b := range buses {
		product *= b.id
	}
	var sum int64
	for _, b := range buses {
		remainder := ((b.id-b.offset)%b.id + b.id) % b.id
		partial := product / b.id
		sum += remainder * partial % product * modInverse(partial%b.id, b.id) % product
		sum %= product
	}
	return sum % product
}

func Part1(in *solve.Input) (string, error) {
	depart, buses, err := parse(in)
	if err != nil {
		return "", err
	}
	b, wait := earliest(depart, buses)
	return strconv.FormatInt(b.id*wait, 10), nil
}

func Part2(in *solve.Input) (string, error) {
	_, buses, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(alignment(buses), 10), nil
}
