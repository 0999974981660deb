package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chris-olszewski/aoc2022"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Input sources, as logged and reported.
const (
	sourceSample = "sample"
	sourceStdin  = "stdin"
)

type runOptions struct {
	part    string
	input   string
	timeout time.Duration
	jobs    int
	sample  bool
	all     bool
}

func (a *app) newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [day]",
		Short: "Solve a day's puzzle",
		Long: `Solve one day's puzzle, or every registered day with --all.

Both parts run unless --part selects one. The input is taken from, in order:
  --sample        the example from the puzzle text
  --input PATH    a file, or - for stdin
  aoc.yaml        inputs.days[<day>]
  default         <inputs.dir>/day<N>.txt`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeDays,
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzles, err := a.selectPuzzles(args, opts)
			if err != nil {
				return err
			}
			parts, err := selectParts(opts.part)
			if err != nil {
				return err
			}
			reports, err := a.solve(cmd.Context(), cmd.InOrStdin(), puzzles, parts, opts)
			if err != nil {
				return err
			}
			return renderReports(cmd.OutOrStdout(), a.cfg.Output, reports)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.part, "part", "p", "", "solve only part 1 or 2")
	flags.StringVarP(&opts.input, "input", "i", "", "input file, or - for stdin")
	flags.BoolVarP(&opts.sample, "sample", "s", false, "use the example input from the puzzle text")
	flags.BoolVarP(&opts.all, "all", "a", false, "solve every registered day")
	flags.IntVarP(&opts.jobs, "jobs", "j", 1, "number of parts to solve in parallel")
	flags.DurationVar(&opts.timeout, "timeout", 0, "deadline for each part (0 for none)")
	cmd.MarkFlagsMutuallyExclusive("sample", "input")
	cmd.MarkFlagsMutuallyExclusive("all", "input")
	return cmd
}

func (a *app) selectPuzzles(args []string, opts runOptions) ([]aoc.Puzzle, error) {
	switch {
	case opts.all && len(args) > 0:
		return nil, errors.New("cannot specify a day with --all")
	case opts.all:
		return a.registry.All(), nil
	case len(args) == 0:
		return nil, errors.New("specify a day or --all\n\nRun 'aoc list' to see available days")
	}
	day, err := parseDay(args[0])
	if err != nil {
		return nil, err
	}
	p, err := a.registry.Lookup(day)
	if err != nil {
		return nil, fmt.Errorf("%w\n\nRun 'aoc list' to see available days", err)
	}
	return []aoc.Puzzle{p}, nil
}

func selectParts(part string) ([]aoc.Part, error) {
	if part == "" {
		return aoc.Parts, nil
	}
	p, err := aoc.ParsePart(part)
	if err != nil {
		return nil, err
	}
	return []aoc.Part{p}, nil
}

// solve runs every part of every puzzle. Inputs are read up front; the
// parts then run on up to opts.jobs workers.
func (a *app) solve(ctx context.Context, stdin io.Reader, puzzles []aoc.Puzzle, parts []aoc.Part, opts runOptions) ([]aoc.Report, error) {
	jobs := make([]aoc.Job, 0, len(puzzles)*len(parts))
	for _, p := range puzzles {
		input, source, err := a.resolveInput(stdin, p, opts)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("input resolved",
			zap.Int("day", p.Day),
			zap.String("source", source),
			zap.Int("bytes", len(input)))

		for _, part := range parts {
			jobs = append(jobs, aoc.Job{Puzzle: p, Part: part, Input: input, Sample: opts.sample})
		}
	}

	runner := aoc.NewRunner().WithTimeout(opts.timeout)
	defer runner.Close()
	a.observe(runner)

	return runner.RunAll(ctx, jobs, opts.jobs)
}

// resolveInput picks the input for p following the documented order.
func (a *app) resolveInput(stdin io.Reader, p aoc.Puzzle, opts runOptions) (string, string, error) {
	switch {
	case opts.sample:
		return p.Sample, sourceSample, nil
	case opts.input == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), sourceStdin, nil
	case opts.input != "":
		return readInput(p.Day, opts.input)
	default:
		return readInput(p.Day, a.cfg.InputPath(p.Day))
	}
}

func readInput(day int, path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read input for day %d: %w", day, err)
	}
	return string(data), path, nil
}

// observe logs runner events.
func (a *app) observe(runner *aoc.Runner) {
	logger := a.logger
	_ = runner.OnSolved(func(_ context.Context, e aoc.RunEvent) error {
		logger.Info("solved",
			zap.Int("day", e.Report.Day),
			zap.Stringer("part", e.Report.Part),
			zap.Int("answer", e.Report.Answer),
			zap.Duration("duration", e.Report.Duration),
			zap.String("digest", e.Report.Digest))
		return nil
	})
	_ = runner.OnFailed(func(_ context.Context, e aoc.RunEvent) error {
		logger.Error("failed",
			zap.Int("day", e.Report.Day),
			zap.Stringer("part", e.Report.Part),
			zap.String("digest", e.Report.Digest),
			zap.Error(e.Err))
		return nil
	})
}
