// Package day18 solves Operation Order: evaluate expressions where +
// and * share precedence, then where + binds tighter.
package day18

import (
	"strconv"

	"advent2020/internal/solve"
)

// parser is a recursive-descent evaluator over a single expression.
// advanced selects the part 2 grammar where + binds tighter than *.
type parser struct {
	input    string
	pos      int
	advanced bool
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

// primary parses a number or a parenthesized expression.
func (p *parser) primary() (int64, error) {
	c, ok := p.peek()
	if !ok {
		return 0, solve.BadInputf("unexpected end of expression %q", p.input)
	}
	if c == '(' {
		p.pos++
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if c, ok := p.peek(); !ok || c != ')' {
			return 0, solve.BadInputf("missing closing paren in %q", p.input)
		}
		p.pos++
		return v, nil
	}
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, solve.BadInputf("expected number at offset %d in %q", p.pos, p.input)
	}
	return strconv.ParseInt(p.input[start:p.pos], 10, 64)
}

// sum parses a chain of additions; under the basic grammar a "sum" is
// just a primary and the chaining happens in expression.
func (p *parser) sum() (int64, error) {
	v, err := p.primary()
	if err != nil {
		return 0, err
	}
	if !p.advanced {
		return v, nil
	}
	for {
		c, ok := p.peek()
		if !ok || c != '+' {
			return v, nil
		}
		p.pos++
		rhs, err := p.primary()
		if err != nil {
			return 0, err
		}
		v += rhs
	}
}

func (p *parser) expression() (int64, error) {
	v, err := p.sum()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || c == ')' {
			return v, nil
		}
		if c != '+' && c != '*' {
			return 0, solve.BadInputf("unexpected character %q in %q", c, p.input)
		}
		p.pos++
		rhs, err := p.sum()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			v += rhs
		} else {
			v *= rhs
		}
	}
}

func eval(expr string, advanced bool) (int64, error) {
	p := &parser{input: expr, advanced: advanced}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	if _, ok := p.peek(); ok {
		return 0, solve.BadInputf("trailing input in %q", expr)
	}
	return v, nil
}

func sumLines(in *solve.Input, advanced bool) (string, error) {
	var total int64
	for _, line := range in.Lines() {
		v, err := eval(line, advanced)
		if err != nil {
			return "", err
		}
		total += v
	}
	return strconv.FormatInt(total, 10), nil
}

func Part1(in *solve.Input) (string, error) {
	return sumLines(in, false)
}

func Part2(in *solve.Input) (string, error) {
	return sumLines(in, true)
}
