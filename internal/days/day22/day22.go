// Package day22 solves Crab Combat: the card game, then its recursive
// variant.
package day22

import (
	"fmt"
	"strconv"

	"advent2020/internal/solve"
)

type deck []int

func (d deck) copyTop(n int) deck {
	return append(deck(nil), d[:n]...)
}

func (d deck) score() int {
	total := 0
	for i, card := range d {
		total += card * (len(d) - i)
	}
	return total
}

// key encodes both decks for the repeated-state check.
func key(a, b deck) string {
	return fmt.Sprint(a, "|", b)
}

func parse(in *solve.Input) (deck, deck, error) {
	blocks := in.Blocks()
	if len(blocks) != 2 || blocks[0][0] != "Player 1:" || blocks[1][0] != "Player 2:" {
		return nil, nil, solve.BadInputf("expected two player sections")
	}
	decks := [2]deck{}
	for i, block := range blocks {
		for _, line := range block[1:] {
			card, err := strconv.Atoi(line)
			if err != nil {
				return nil, nil, solve.BadInputf("bad card %q", line)
			}
			decks[i] = append(decks[i], card)
		}
	}
	return decks[0], decks[1], nil
}

// combat plays the simple game: higher card takes both.
func combat(a, b deck) deck {
	for len(a) > 0 && len(b) > 0 {
		ca, cb := a[0], b[0]
		a, b = a[1:], b[1:]
		if ca > cb {
			a = append(a, ca, cb)
		} else {
			b = append(b, cb, ca)
		}
	}
	if len(a) > 0 {
		return a
	}
	return b
}

// recursiveCombat returns true if player 1 wins, plus the winning deck.
// A repeated game state ends the game in player 1's favor; when both
// players hold at least as many cards as they drew, the round winner
// comes from a subgame.
func recursiveCombat(a, b deck) (bool, deck) {
	seen := map[string]bool{}
	for len(a) > 0 && len(b) > 0 {
		k := key(a, b)
		if seen[k] {
			return true, a
		}
		seen[k] = true

		ca, cb := a[0], b[0]
		a, b = a[1:], b[1:]
		var oneWins bool
		if len(a) >= ca && len(b) >= cb {
			oneWins, _ = recursiveCombat(a.copyTop(ca), b.copyTop(cb))
		} else {
			oneWins = ca > cb
		}
		if oneWins {
			a = append(a, ca, cb)
		} else {
			b = append(b, cb, ca)
		}
	}
	if len(a) > 0 {
		return true, a
	}
	return false, b
}

func Part1(in *solve.Input) (string, error) {
	a, b, err := parse(in)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(combat(a, b).score()), nil
}

func Part2(in *solve.Input) (string, error) {
	a, b, err := parse(in)
	if err != nil {
		return "", err
	}
	_, winner := recursiveCombat(a, b)
	return strconv.Itoa(winner.score()), nil
}
