// Package aoc provides the shared machinery behind the Advent of Code 2022
// solvers in this module: small, named pipeline stages, the line-oriented
// input idioms every day parses with, and a catalogue and runner that turn
// a solved part into a report.
//
// # Overview
//
// Every puzzle part is a pipeline with the same shape:
//
//	Parse -> Transform/Filter -> Reduce -> Report
//
// Each day defines a private state value that flows through the pipeline.
// Parsing fills it with typed records, later stages reduce those records to
// the answer. Stages are built with adapter functions and composed with a
// Sequence:
//
//	seq := aoc.NewSequence("day4-part1",
//	    aoc.Apply(ParsePairsName, parsePairs),
//	    aoc.Transform(CountContainedName, countContained),
//	)
//	defer seq.Close()
//	state, err := seq.Process(ctx, cleanup{input: input})
//
// # Adapter Functions
//
//   - Apply: stages that may fail, such as parsing
//   - Transform: stages that cannot fail, such as counting or summing
//   - Effect: stages that check a condition without changing the value
//
// # Errors
//
// Two kinds of failure exist and both abort the whole computation:
//
//   - ErrMalformedInput: a token, field count or line length that does not
//     match the puzzle's format
//   - ErrGuaranteeViolated: input that parses but breaks a promise the
//     puzzle makes, such as a rucksack without a shared item
//
// Failures leaving a Sequence are wrapped in *Error[T], which records the
// stage path (for example "day3-part2 -> badges") and how long the pipeline
// ran before failing. errors.Is still sees the sentinel underneath.
//
// # Input Idioms
//
// Lines, ParseLines, Blocks and Chunk cover every input format in the
// module. Set is an insertion-ordered set used for the rucksack
// intersections.
//
// # Catalogue
//
// A Puzzle bundles a day's two solvers and its example input. A Registry
// holds puzzles by day, and a Runner executes one part and produces a
// Report carrying the answer, the elapsed time and a BLAKE3 digest of the
// input, so repeated runs over the same input can be compared.
//
// Runner.WithTimeout wraps each solve in a Timeout stage, and Runner.RunAll
// spreads a batch of Jobs over a bounded number of workers, returning the
// reports in job order or the first failing job's *JobError.
package aoc
