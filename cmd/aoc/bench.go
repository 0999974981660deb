package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/chris-olszewski/aoc2022"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// BenchResult is one part's benchmark.
type BenchResult struct {
	Day         int      `yaml:"day"`
	Part        aoc.Part `yaml:"part"`
	Iterations  int      `yaml:"iterations"`
	NsPerOp     int64    `yaml:"ns_per_op"`
	AllocsPerOp int64    `yaml:"allocs_per_op"`
	BytesPerOp  int64    `yaml:"bytes_per_op"`
}

func (a *app) newBenchCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:     "bench [day]",
		Aliases: []string{"benchmark"},
		Short:   "Benchmark a day's solvers",
		Long: `Benchmark one day's solvers, or every registered day with --all.

Each part is first solved once to check the input, then timed in-process.
Input selection follows the same rules as 'aoc run'.`,
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

			var results []BenchResult
			for _, p := range puzzles {
				input, source, err := a.resolveInput(cmd.InOrStdin(), p, opts)
				if err != nil {
					return err
				}
				for _, part := range parts {
					a.logger.Debug("benchmarking",
						zap.Int("day", p.Day),
						zap.Stringer("part", part),
						zap.String("source", source))
					result, err := benchmark(cmd.Context(), p, part, input)
					if err != nil {
						return err
					}
					results = append(results, result)
				}
			}
			return renderBench(cmd.OutOrStdout(), a.cfg.Output, results)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.part, "part", "p", "", "benchmark only part 1 or 2")
	flags.StringVarP(&opts.input, "input", "i", "", "input file, or - for stdin")
	flags.BoolVarP(&opts.sample, "sample", "s", false, "use the example input from the puzzle text")
	flags.BoolVarP(&opts.all, "all", "a", false, "benchmark every registered day")
	cmd.MarkFlagsMutuallyExclusive("sample", "input")
	cmd.MarkFlagsMutuallyExclusive("all", "input")
	return cmd
}

func benchmark(ctx context.Context, p aoc.Puzzle, part aoc.Part, input string) (BenchResult, error) {
	if _, err := p.Solve(ctx, part, input); err != nil {
		return BenchResult{}, fmt.Errorf("day %d %s: %w", p.Day, part, err)
	}

	r := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = p.Solve(ctx, part, input)
		}
	})

	return BenchResult{
		Day:         p.Day,
		Part:        part,
		Iterations:  r.N,
		NsPerOp:     r.NsPerOp(),
		AllocsPerOp: r.AllocsPerOp(),
		BytesPerOp:  r.AllocedBytesPerOp(),
	}, nil
}
