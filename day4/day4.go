// Package day4 solves "Camp Cleanup": count elf pairs whose section
// assignments fully contain one another, then pairs that overlap at all.
package day4

import (
	"context"
	_ "embed"

	"github.com/chris-olszewski/aoc2022"
)

// Sample is the example assignment list from the puzzle statement.
//
//go:embed sample.txt
var Sample string

const (
	Part1Name            aoc.Name = "day4-part1"
	Part2Name            aoc.Name = "day4-part2"
	ParsePairsName       aoc.Name = "parse-pairs"
	CountContainedName   aoc.Name = "count-contained"
	CountOverlappingName aoc.Name = "count-overlapping"
)

type cleanup struct {
	input  string
	pairs  []Pair
	answer int
}

func parsePairs(_ context.Context, c cleanup) (cleanup, error) {
	pairs, err := ParsePairs(c.input)
	if err != nil {
		return c, err
	}
	c.pairs = pairs
	return c, nil
}

func count(name aoc.Name, fn func([]Pair) int) aoc.Processor[cleanup] {
	return aoc.Transform(name, func(_ context.Context, c cleanup) cleanup {
		c.answer = fn(c.pairs)
		return c
	})
}

func solve(ctx context.Context, name aoc.Name, counter aoc.Processor[cleanup], input string) (int, error) {
	seq := aoc.NewSequence(name, aoc.Apply(ParsePairsName, parsePairs), counter)
	defer seq.Close()

	c, err := seq.Process(ctx, cleanup{input: input})
	if err != nil {
		return 0, err
	}
	return c.answer, nil
}

// Part1 counts pairs where one assignment fully contains the other.
func Part1(ctx context.Context, input string) (int, error) {
	return solve(ctx, Part1Name, count(CountContainedName, CountContained), input)
}

// Part2 counts pairs whose assignments overlap.
func Part2(ctx context.Context, input string) (int, error) {
	return solve(ctx, Part2Name, count(CountOverlappingName, CountOverlapping), input)
}

// Puzzle returns the catalogue entry for day 4.
func Puzzle() aoc.Puzzle {
	return aoc.Puzzle{
		Day:     4,
		Title:   "Camp Cleanup",
		Sample:  Sample,
		PartOne: Part1,
		PartTwo: Part2,
	}
}
