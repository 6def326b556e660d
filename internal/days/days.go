// Package days is the solution table: one entry per puzzle, wired into
// the registry by the CLI.
package days

import (
	"advent2020/internal/days/day01"
	"advent2020/internal/days/day02"
	"advent2020/internal/days/day03"
	"advent2020/internal/days/day04"
	"advent2020/internal/days/day05"
	"advent2020/internal/days/day06"
	"advent2020/internal/days/day07"
	"advent2020/internal/days/day08"
	"advent2020/internal/days/day09"
	"advent2020/internal/days/day10"
	"advent2020/internal/days/day11"
	"advent2020/internal/days/day12"
	"advent2020/internal/days/day13"
	"advent2020/internal/days/day14"
	"advent2020/internal/days/day15"
	"advent2020/internal/days/day16"
	"advent2020/internal/days/day17"
	"advent2020/internal/days/day18"
	"advent2020/internal/days/day19"
	"advent2020/internal/days/day20"
	"advent2020/internal/days/day21"
	"advent2020/internal/days/day22"
	"advent2020/internal/days/day23"
	"advent2020/internal/days/day24"
	"advent2020/internal/days/day25"
	"advent2020/internal/solve"
)

// All returns every implemented solution in day order. Day 25 has no
// part 2 by construction.
func All() []solve.Solution {
	return []solve.Solution{
		{Day: 1, Title: "Report Repair", Part1: day01.Part1, Part2: day01.Part2},
		{Day: 2, Title: "Password Philosophy", Part1: day02.Part1, Part2: day02.Part2},
		{Day: 3, Title: "Toboggan Trajectory", Part1: day03.Part1, Part2: day03.Part2},
		{Day: 4, Title: "Passport Processing", Part1: day04.Part1, Part2: day04.Part2},
		{Day: 5, Title: "Binary Boarding", Part1: day05.Part1, Part2: day05.Part2},
		{Day: 6, Title: "Custom Customs", Part1: day06.Part1, Part2: day06.Part2},
		{Day: 7, Title: "Handy Haversacks", Part1: day07.Part1, Part2: day07.Part2},
		{Day: 8, Title: "Handheld Halting", Part1: day08.Part1, Part2: day08.Part2},
		{Day: 9, Title: "Encoding Error", Part1: day09.Part1, Part2: day09.Part2},
		{Day: 10, Title: "Adapter Array", Part1: day10.Part1, Part2: day10.Part2},
		{Day: 11, Title: "Seating System", Part1: day11.Part1, Part2: day11.Part2},
		{Day: 12, Title: "Rain Risk", Part1: day12.Part1, Part2: day12.Part2},
		{Day: 13, Title: "Shuttle Search", Part1: day13.Part1, Part2: day13.Part2},
		{Day: 14, Title: "Docking Data", Part1: day14.Part1, Part2: day14.Part2},
		{Day: 15, Title: "Rambunctious Recitation", Part1: day15.Part1, Part2: day15.Part2},
		{Day: 16, Title: "Ticket Translation", Part1: day16.Part1, Part2: day16.Part2},
		{Day: 17, Title: "Conway Cubes", Part1: day17.Part1, Part2: day17.Part2},
		{Day: 18, Title: "Operation Order", Part1: day18.Part1, Part2: day18.Part2},
		{Day: 19, Title: "Monster Messages", Part1: day19.Part1, Part2: day19.Part2},
		{Day: 20, Title: "Jurassic Jigsaw", Part1: day20.Part1, Part2: day20.Part2},
		{Day: 21, Title: "Allergen Assessment", Part1: day21.Part1, Part2: day21.Part2},
		{Day: 22, Title: "Crab Combat", Part1: day22.Part1, Part2: day22.Part2},
		{Day: 23, Title: "Crab Cups", Part1: day23.Part1, Part2: day23.Part2},
		{Day: 24, Title: "Lobby Layout", Part1: day24.Part1, Part2: day24.Part2},
		{Day: 25, Title: "Combo Breaker", Part1: day25.Part1},
	}
}
