// Package day16 solves Ticket Translation: discard invalid nearby
// tickets, then deduce which field each column holds.
package day16

import (
	"regexp"
	"strconv"
	"strings"

	"advent2020/internal/solve"
)

var fieldRe = regexp.MustCompile(`^([^:]+): (\d+)-(\d+) or (\d+)-(\d+)$`)

type span struct {
	lo, hi int
}

func (s span) contains(v int) bool {
	return v >= s.lo && v <= s.hi
}

type field struct {
	name   string
	ranges [2]span
}

func (f field) allows(v int) bool {
	return f.ranges[0].contains(v) || f.ranges[1].contains(v)
}

type ticket []int

type notes struct {
	fields []field
	yours  ticket
	nearby []ticket
}

func parseTicket(line string) (ticket, error) {
	fields := strings.Split(line, ",")
	t := make(ticket, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, solve.BadInputf("bad ticket value %q", f)
		}
		t = append(t, v)
	}
	return t, nil
}

func parse(in *solve.Input) (*notes, error) {
	blocks := in.Blocks()
	if len(blocks) != 3 {
		return nil, solve.BadInputf("expected 3 sections, got %d", len(blocks))
	}

	n := &notes{}
	for _, line := range blocks[0] {
		m := fieldRe.FindStringSubmatch(line)
		if m == nil {
			return nil, solve.BadInputf("malformed field rule %q", line)
		}
		bounds := make([]int, 4)
		for i := range bounds {
			bounds[i], _ = strconv.Atoi(m[i+2])
		}
		n.fields = append(n.fields, field{
			name:   m[1],
			ranges: [2]span{{bounds[0], bounds[1]}, {bounds[2], bounds[3]}},
		})
	}

	if len(blocks[1]) != 2 || blocks[1][0] != "your ticket:" {
		return nil, solve.BadInputf("malformed your-ticket section")
	}
	yours, err := parseTicket(blocks[1][1])
	if err != nil {
		return nil, err
	}
	n.yours = yours

	if len(blocks[2]) < 2 || blocks[2][0] != "nearby tickets:" {
		return nil, solve.BadInputf("malformed nearby-tickets section")
	}
	for _, line := range blocks[2][1:] {
		t, err := parseTicket(line)
		if err != nil {
			return nil, err
		}
		n.nearby = append(n.nearby, t)
	}
	return n, nil
}

func (n *notes) allowedByAny(v int) bool {
	for _, f := range n.fields {
		if f.allows(v) {
			return true
		}
	}
	return false
}

// errorRate sums nearby ticket values no field allows.
func (n *notes) errorRate() int {
	rate := 0
	for _, t := range n.nearby {
		for _, v := range t {
			if !n.allowedByAny(v) {
				rate += v
			}
		}
	}
	return rate
}

// validNearby keeps tickets whose every value some field allows.
func (n *notes) validNearby() []ticket {
	var valid []ticket
	for _, t := range n.nearby {
		ok := true
		for _, v := range t {
			if !n.allowedByAny(v) {
				ok = false
				break
			}
		}
		if ok {
			valid = append(valid, t)
		}
	}
	return valid
}

// assignFields maps each field index to its ticket column by repeated
// elimination: some field always has exactly one candidate column left.
func (n *notes) assignFields() ([]int, error) {
	tickets := n.validNearby()
	columns := len(n.yours)

	candidates := make([]map[int]bool, len(n.fields))
	for i, f := range n.fields {
		candidates[i] = map[int]bool{}
		for col := 0; col < columns; col++ {
			ok := true
			for _, t := range tickets {
				if !f.allows(t[col]) {
					ok = false
					break
				}
			}
			if ok {
				candidates[i][col] = true
			}
		}
	}

	assignment := make([]int, len(n.fields))
	for i := range assignment {
		assignment[i] = -1
	}
	for remaining := len(n.fields); remaining > 0; {
		progress := false
		for i, cand := range candidates {
			if assignment[i] != -1 || len(cand) != 1 {
				continue
			}
			var col int
			for col = range cand {
			}
			assignment[i] = col
			remaining--
			for _, other := range candidates {
				delete(other, col)
			}
			progress = true
		}
		if !progress {
			return nil, solve.NoSolutionf("field assignment is ambiguous")
		}
	}
	return assignment, nil
}

func Part1(in *solve.Input) (string, error) {
	n, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n.errorRate()), nil
}

// Part2 multiplies your ticket's values for the departure fields.
func Part2(in *solve.Input) (string, error) {
	n, err := parse(in)
	if err != nil {
		return "", err
	}
	assignment, err := n.assignFields()
	if err != nil {
		return "", err
	}
	product := 1
	for i, f := range n.fields {
		if strings.HasPrefix(f.name, "departure") {
			product *= n.yours[assignment[i]]
		}
	}
	return strconv.Itoa(product), nil
}
