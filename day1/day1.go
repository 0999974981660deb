// Package day1 solves "Calorie Counting": sum each elf's snacks, then find
// the elf (or the top three elves) carrying the most calories.
package day1

import (
	"context"
	_ "embed"

	"github.com/chris-olszewski/aoc2022"
)

// Sample is the example inventory from the puzzle statement.
//
//go:embed sample.txt
var Sample string

// TopK is how many elves part two sums.
const TopK = 3

// Stage and pipeline names.
const (
	Part1Name         aoc.Name = "day1-part1"
	Part2Name         aoc.Name = "day1-part2"
	ParseCaloriesName aoc.Name = "parse-calories"
	RequireElvesName  aoc.Name = "require-elves"
	MaxCaloriesName   aoc.Name = "max-calories"
	TopKCaloriesName  aoc.Name = "top-k-calories"
)

type inventory struct {
	input  string
	totals []int
	answer int
}

func parse(_ context.Context, s inventory) (inventory, error) {
	totals, err := ParseCalories(s.input)
	if err != nil {
		return s, err
	}
	s.totals = totals
	return s, nil
}

func requireElves(_ context.Context, s inventory) error {
	if len(s.totals) == 0 {
		return aoc.Violatedf("no elves in input")
	}
	return nil
}

// pipeline parses, then reduces. The elf guarantee runs right after
// parsing.
func pipeline(name aoc.Name, reduce aoc.Chainable[inventory]) (*aoc.Sequence[inventory], error) {
	seq := aoc.NewSequence(name, aoc.Apply(ParseCaloriesName, parse), reduce)
	if err := seq.After(ParseCaloriesName, aoc.Effect(RequireElvesName, requireElves)); err != nil {
		_ = seq.Close()
		return nil, err
	}
	return seq, nil
}

func solve(ctx context.Context, name aoc.Name, reduce aoc.Chainable[inventory], input string) (int, error) {
	seq, err := pipeline(name, reduce)
	if err != nil {
		return 0, err
	}
	defer seq.Close()
	s, err := seq.Process(ctx, inventory{input: input})
	if err != nil {
		return 0, err
	}
	return s.answer, nil
}

// Part1 returns the most calories carried by a single elf.
func Part1(ctx context.Context, input string) (int, error) {
	return solve(ctx, Part1Name,
		aoc.Apply(MaxCaloriesName, func(_ context.Context, s inventory) (inventory, error) {
			m, err := MaxCalories(s.totals)
			s.answer = m
			return s, err
		}),
		input)
}

// Part2 returns the calories carried by the top three elves together.
func Part2(ctx context.Context, input string) (int, error) {
	return solve(ctx, Part2Name,
		aoc.Apply(TopKCaloriesName, func(_ context.Context, s inventory) (inventory, error) {
			sum, err := TopKCalories(s.totals, TopK)
			s.answer = sum
			return s, err
		}),
		input)
}

// Puzzle returns the catalogue entry for day 1.
func Puzzle() aoc.Puzzle {
	return aoc.Puzzle{
		Day:     1,
		Title:   "Calorie Counting",
		Sample:  Sample,
		PartOne: Part1,
		PartTwo: Part2,
	}
}
