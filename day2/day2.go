// Package day2 solves "Rock Paper Scissors": total the score of a strategy
// guide, read first as pairs of shapes and then as shape plus outcome.
package day2

import (
	"context"
	_ "embed"

	"github.com/chris-olszewski/aoc2022"
)

// Sample is the example strategy guide from the puzzle statement.
//
//go:embed sample.txt
var Sample string

const (
	Part1Name       aoc.Name = "day2-part1"
	Part2Name       aoc.Name = "day2-part2"
	ParseRoundsName aoc.Name = "parse-rounds"
	ParsePlansName  aoc.Name = "parse-plans"
	ScoreRoundsName aoc.Name = "score-rounds"
	ScorePlansName  aoc.Name = "score-plans"
)

type guide struct {
	input  string
	rounds []Round
	plans  []Plan
	answer int
}

// Part1 scores the guide with both columns read as shapes.
func Part1(ctx context.Context, input string) (int, error) {
	seq := aoc.NewSequence(Part1Name,
		aoc.Apply(ParseRoundsName, func(_ context.Context, g guide) (guide, error) {
			rounds, err := ParseRounds(g.input)
			g.rounds = rounds
			return g, err
		}),
		aoc.Transform(ScoreRoundsName, func(_ context.Context, g guide) guide {
			g.answer = aoc.SumFunc(g.rounds, Round.Score)
			return g
		}),
	)
	defer seq.Close()

	g, err := seq.Process(ctx, guide{input: input})
	if err != nil {
		return 0, err
	}
	return g.answer, nil
}

// Part2 scores the guide with the second column read as the outcome.
func Part2(ctx context.Context, input string) (int, error) {
	seq := aoc.NewSequence(Part2Name,
		aoc.Apply(ParsePlansName, func(_ context.Context, g guide) (guide, error) {
			plans, err := ParsePlans(g.input)
			g.plans = plans
			return g, err
		}),
		aoc.Transform(ScorePlansName, func(_ context.Context, g guide) guide {
			g.answer = aoc.SumFunc(g.plans, Plan.Score)
			return g
		}),
	)
	defer seq.Close()

	g, err := seq.Process(ctx, guide{input: input})
	if err != nil {
		return 0, err
	}
	return g.answer, nil
}

// Puzzle returns the catalogue entry for day 2.
func Puzzle() aoc.Puzzle {
	return aoc.Puzzle{
		Day:     2,
		Title:   "Rock Paper Scissors",
		Sample:  Sample,
		PartOne: Part1,
		PartTwo: Part2,
	}
}
