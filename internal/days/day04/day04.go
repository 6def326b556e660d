// Package day04 solves Passport Processing: check batch-file passports
// for required fields and valid field values.
package day04

import (
	"strconv"
	"strings"

	"advent2020/internal/solve"
)

// required lists the fields a passport must carry; cid is optional.
var required = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

var eyeColors = map[string]bool{
	"amb": true, "blu": true, "brn": true,
	"gry": true, "grn": true, "hzl": true, "oth": true,
}

type passport map[string]string

func parse(in *solve.Input) ([]passport, error) {
	blocks := in.Blocks()
	out := make([]passport, 0, len(blocks))
	for _, block := range blocks {
		p := passport{}
		for _, line := range block {
			for _, field := range strings.Fields(line) {
				key, value, ok := strings.Cut(field, ":")
				if !ok {
					return nil, solve.BadInputf("malformed field %q", field)
				}
				p[key] = value
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (p passport) complete() bool {
	for _, key := range required {
		if _, ok := p[key]; !ok {
			return false
		}
	}
	return true
}

func (p passport) valid() bool {
	if !p.complete() {
		return false
	}
	for key, value := range p {
		if !fieldValid(key, value) {
			return false
		}
	}
	return true
}

func yearIn(value string, min, max int) bool {
	if len(value) != 4 {
		return false
	}
	year, err := strconv.Atoi(value)
	return err == nil && year >= min && year <= max
}

func fieldValid(key, value string) bool {
	switch key {
	case "byr":
		return yearIn(value, 1920, 2002)
	case "iyr":
		return yearIn(value, 2010, 2020)
	case "eyr":
		return yearIn(value, 2020, 2030)
	case "hgt":
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSuffix(value, "cm"), "in"))
		if err != nil {
			return false
		}
		if strings.HasSuffix(value, "cm") {
			return n >= 150 && n <= 193
		}
		if strings.HasSuffix(value, "in") {
			return n >= 59 && n <= 76
		}
		return false
	case "hcl":
		if len(value) != 7 || value[0] != '#' {
			return false
		}
		for _, c := range value[1:] {
			if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
				return false
			}
		}
		return true
	case "ecl":
		return eyeColors[value]
	case "pid":
		if len(value) != 9 {
			return false
		}
		for _, c := range value {
			if c < '0' || c > '9' {
				return false
			}
		}
		return true
	case "cid":
		return true
	default:
		return false
	}
}

func count(in *solve.Input, ok func(passport) bool) (string, error) {
	ps, err := parse(in)
	if err != nil {
		return "", err
	}
	n := 0
	for _, p := range ps {
		if ok(p) {
			n++
		}
	}
	return strconv.Itoa(n), nil
}

func Part1(in *solve.Input) (string, error) {
	return count(in, passport.complete)
}

func Part2(in *solve.Input) (string, error) {
	return count(in, passport.valid)
}
