// Package day21 solves Allergen Assessment: pin each allergen to its
// ingredient by intersecting candidate lists.
package day21

import (
	"sort"
	"strconv"
	"strings"

	"advent2020/internal/solve"
)

// food is one label line: ingredients plus declared allergens.
type food struct {
	ingredients []string
	allergens   []string
}

func parseFood(line string) (food, error) {
	ingredients, allergens, ok := strings.Cut(line, " (contains ")
	if !ok {
		return food{}, solve.BadInputf("missing allergen list in %q", line)
	}
	if !strings.HasSuffix(allergens, ")") {
		return food{}, solve.BadInputf("unterminated allergen list in %q", line)
	}
	return food{
		ingredients: strings.Fields(ingredients),
		allergens:   strings.Split(strings.TrimSuffix(allergens, ")"), ", "),
	}, nil
}

func parse(in *solve.Input) ([]food, error) {
	lines := in.Lines()
	foods := make([]food, 0, len(lines))
	for _, line := range lines {
		f, err := parseFood(line)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, nil
}

// candidates intersects, per allergen, the ingredient lists of every
// food declaring it.
func candidates(foods []food) map[string]map[string]bool {
	out := map[string]map[string]bool{}
	for _, f := range foods {
		present := map[string]bool{}
		for _, ing := range f.ingredients {
			present[ing] = true
		}
		for _, a := range f.allergens {
			if out[a] == nil {
				out[a] = map[string]bool{}
				for ing := range present {
					out[a][ing] = true
				}
				continue
			}
			for ing := range out[a] {
				if !present[ing] {
					delete(out[a], ing)
				}
			}
		}
	}
	return out
}

// Part1 counts appearances of ingredients that are no allergen's
// candidate.
func Part1(in *solve.Input) (string, error) {
	foods, err := parse(in)
	if err != nil {
		return "", err
	}
	suspect := map[string]bool{}
	for _, cand := range candidates(foods) {
		for ing := range cand {
			suspect[ing] = true
		}
	}
	n := 0
	for _, f := range foods {
		for _, ing := range f.ingredients {
			if !suspect[ing] {
				n++
			}
		}
	}
	return strconv.Itoa(n), nil
}

// resolve assigns each allergen its single ingredient by repeated
// elimination.
func resolve(cand map[string]map[string]bool) (map[string]string, error) {
	assigned := map[string]string{}
	for len(assigned) < len(cand) {
		progress := false
		for allergen, ingredients := range cand {
			if _, done := assigned[allergen]; done || len(ingredients) != 1 {
				continue
			}
			var ing string
			for ing = range ingredients {
			}
			assigned[allergen] = ing
			for _, other := range cand {
				delete(other, ing)
			}
			progress = true
		}
		if !progress {
			return nil, solve.NoSolutionf("allergen assignment is ambiguous")
		}
	}
	return assigned, nil
}

// Part2 lists the dangerous ingredients sorted by their allergen.
func Part2(in *solve.Input) (string, error) {
	foods, err := parse(in)
	if err != nil {
		return "", err
	}
	assigned, err := resolve(candidates(foods))
	if err != nil {
		return "", err
	}
	allergens := make([]string, 0, len(assigned))
	for a := range assigned {
		allergens = append(allergens, a)
	}
	sort.Strings(allergens)
	ingredients := make([]string, len(allergens))
	for i, a := range allergens {
		ingredients[i] = assigned[a]
	}
	return strings.Join(ingredients, ","), nil
}
