// Package day3 solves "Rucksack Reorganization": find the item packed in
// both compartments of each rucksack, then the badge shared by each group
// of three elves, and sum their priorities.
package day3

import (
	"context"
	_ "embed"

	"github.com/chris-olszewski/aoc2022"
)

// Sample is the example packing list from the puzzle statement.
//
//go:embed sample.txt
var Sample string

const (
	Part1Name          aoc.Name = "day3-part1"
	Part2Name          aoc.Name = "day3-part2"
	ParseRucksacksName aoc.Name = "parse-rucksacks"
	CommonItemsName    aoc.Name = "common-items"
	BadgesName         aoc.Name = "badges"
)

type packing struct {
	input     string
	rucksacks []Rucksack
	answer    int
}

func parse(_ context.Context, p packing) (packing, error) {
	rs, err := ParseRucksacks(p.input)
	p.rucksacks = rs
	return p, err
}

func run(ctx context.Context, name aoc.Name, reduce aoc.Processor[packing], input string) (int, error) {
	seq := aoc.NewSequence(name, aoc.Apply(ParseRucksacksName, parse), reduce)
	defer seq.Close()

	p, err := seq.Process(ctx, packing{input: input})
	if err != nil {
		return 0, err
	}
	return p.answer, nil
}

// Part1 sums the priorities of the items found in both compartments.
func Part1(ctx context.Context, input string) (int, error) {
	return run(ctx, Part1Name, aoc.Apply(CommonItemsName, func(_ context.Context, p packing) (packing, error) {
		total, err := ErrorPriorities(p.rucksacks)
		p.answer = total
		return p, err
	}), input)
}

// Part2 sums the priorities of each three-elf group's badge.
func Part2(ctx context.Context, input string) (int, error) {
	return run(ctx, Part2Name, aoc.Apply(BadgesName, func(_ context.Context, p packing) (packing, error) {
		total, err := BadgePriorities(p.rucksacks)
		p.answer = total
		return p, err
	}), input)
}

// Puzzle returns the catalogue entry for day 3.
func Puzzle() aoc.Puzzle {
	return aoc.Puzzle{
		Day:     3,
		Title:   "Rucksack Reorganization",
		Sample:  Sample,
		PartOne: Part1,
		PartTwo: Part2,
	}
}
