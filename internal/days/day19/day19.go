// Package day19 solves Monster Messages: match messages against a
// numbered rule grammar, then against the looping variant of rule 0.
package day19

import (
	"strconv"
	"strings"

	"advent2020/internal/solve"
)

type ruleKind int

const (
	charRule ruleKind = iota
	seqRule
	altRule
	// loopRule is the part 2 rewrite of rule 0: two or more of rule a
	// followed by at least one and at most count-1 of rule b.
	loopRule
)

type rule struct {
	kind ruleKind
	char byte
	seqs [2][]int
	a, b int
}

type grammar struct {
	rules    map[int]rule
	messages []string
}

func parseSeq(s string) ([]int, error) {
	fields := strings.Fields(s)
	seq := make([]int, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, solve.BadInputf("bad rule reference %q", f)
		}
		seq = append(seq, id)
	}
	return seq, nil
}

func parseRule(line string) (int, rule, error) {
	idStr, body, ok := strings.Cut(line, ": ")
	if !ok {
		return 0, rule{}, solve.BadInputf("malformed rule %q", line)
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, rule{}, solve.BadInputf("bad rule id %q", idStr)
	}
	if strings.HasPrefix(body, `"`) {
		if len(body) != 3 || body[2] != '"' {
			return 0, rule{}, solve.BadInputf("malformed literal in %q", line)
		}
		return id, rule{kind: charRule, char: body[1]}, nil
	}
	r := rule{kind: seqRule}
	first, second, alt := strings.Cut(body, " | ")
	if r.seqs[0], err = parseSeq(first); err != nil {
		return 0, rule{}, err
	}
	if alt {
		r.kind = altRule
		if r.seqs[1], err = parseSeq(second); err != nil {
			return 0, rule{}, err
		}
	}
	return id, r, nil
}

func parse(in *solve.Input) (*grammar, error) {
	blocks := in.Blocks()
	if len(blocks) != 2 {
		return nil, solve.BadInputf("expected rules and messages, got %d sections", len(blocks))
	}
	g := &grammar{rules: map[int]rule{}, messages: blocks[1]}
	for _, line := range blocks[0] {
		id, r, err := parseRule(line)
		if err != nil {
			return nil, err
		}
		g.rules[id] = r
	}
	return g, nil
}

// match tries rule id against the front of s, returning the unmatched
// remainder. Alternatives commit to the first branch that matches.
func (g *grammar) match(id int, s string) (string, bool) {
	r, ok := g.rules[id]
	if !ok {
		return "", false
	}
	switch r.kind {
	case charRule:
		if len(s) > 0 && s[0] == r.char {
			return s[1:], true
		}
		return "", false
	case seqRule:
		return g.matchSeq(r.seqs[0], s)
	case altRule:
		if rest, ok := g.matchSeq(r.seqs[0], s); ok {
			return rest, true
		}
		return g.matchSeq(r.seqs[1], s)
	case loopRule:
		return g.matchLoop(r, s)
	}
	return "", false
}

func (g *grammar) matchSeq(seq []int, s string) (string, bool) {
	for _, id := range seq {
		rest, ok := g.match(id, s)
		if !ok {
			return "", false
		}
		s = rest
	}
	return s, true
}

// matchLoop consumes rule a greedily, then rule b up to count-1 times.
// The first b must match for the whole rule to match.
func (g *grammar) matchLoop(r rule, s string) (string, bool) {
	count := 0
	for {
		rest, ok := g.match(r.a, s)
		if !ok {
			break
		}
		s = rest
		count++
	}
	if count < 2 {
		return "", false
	}
	for i := 0; i < count-1; i++ {
		rest, ok := g.match(r.b, s)
		if !ok {
			if i == 0 {
				return "", false
			}
			break
		}
		s = rest
	}
	return s, true
}

func (g *grammar) matches(msg string) bool {
	rest, ok := g.match(0, msg)
	return ok && rest == ""
}

func (g *grammar) countMatches() int {
	n := 0
	for _, msg := range g.messages {
		if g.matches(msg) {
			n++
		}
	}
	return n
}

func Part1(in *solve.Input) (string, error) {
	g, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(g.countMatches()), nil
}

// Part2 rewrites rules 8 and 11 to loop, which folds rule 0 into "two
// or more of rule 42 followed by fewer of rule 31".
func Part2(in *solve.Input) (string, error) {
	g, err := parse(in)
	if err != nil {
		return "", err
	}
	g.rules[0] = rule{kind: loopRule, a: 42, b: 31}
	return strconv.Itoa(g.countMatches()), nil
}
