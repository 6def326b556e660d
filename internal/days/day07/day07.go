// Package day07 solves Handy Haversacks: luggage rules form a weighted
// DAG of bag colors.
package day07

import (
	"strconv"
	"strings"

	"advent2020/internal/solve"
)

const shinyGold = "shiny gold"

// content is one edge of a rule: count bags of a given color.
type content struct {
	count int
	color string
}

type ruleset map[string][]content

func parseRule(line string) (string, []content, error) {
	head, tail, ok := strings.Cut(line, " bags contain ")
	if !ok {
		return "", nil, solve.BadInputf("missing rule separator in %q", line)
	}
	tail = strings.TrimSuffix(tail, ".")
	if tail == "no other bags" {
		return head, nil, nil
	}
	var contents []content
	for _, part := range strings.Split(tail, ", ") {
		part = strings.TrimSuffix(strings.TrimSuffix(part, " bags"), " bag")
		countStr, color, ok := strings.Cut(part, " ")
		if !ok {
			return "", nil, solve.BadInputf("malformed content %q in %q", part, line)
		}
		count, err := strconv.Atoi(countStr)
		if err != nil {
			return "", nil, solve.BadInputf("bad count in %q", part)
		}
		contents = append(contents, content{count: count, color: color})
	}
	return head, contents, nil
}

func parse(in *solve.Input) (ruleset, error) {
	rules := ruleset{}
	for _, line := range in.Lines() {
		color, contents, err := parseRule(line)
		if err != nil {
			return nil, err
		}
		rules[color] = contents
	}
	return rules, nil
}

// containers counts colors that can transitively hold the target.
func (r ruleset) containers(target string) int {
	holds := map[string]map[string]bool{}
	for color, contents := range r {
		for _, c := range contents {
			if holds[c.color] == nil {
				holds[c.color] = map[string]bool{}
			}
			holds[c.color][color] = true
		}
	}

	reachable := map[string]bool{}
	queue := []string{target}
	for len(queue) > 0 {
		color := queue[0]
		queue = queue[1:]
		for outer := range holds[color] {
			if !reachable[outer] {
				reachable[outer] = true
				queue = append(queue, outer)
			}
		}
	}
	return len(reachable)
}

// contained counts the bags inside one bag of the given color.
func (r ruleset) contained(color string) int {
	total := 0
	for _, c := range r[color] {
		total += c.count * (1 + r.contained(c.color))
	}
	return total
}

func Part1(in *solve.Input) (string, error) {
	rules, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(rules.containers(shinyGold)), nil
}

func Part2(in *solve.Input) (string, error) {
	rules, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(rules.contained(shinyGold)), nil
}
