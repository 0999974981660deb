package main

import (
	"fmt"
	"os"

	"github.com/chris-olszewski/aoc2022"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "0.4.0"

// app holds the state shared by every subcommand once the root command's
// PersistentPreRunE has run.
type app struct {
	configPath string
	output     string
	verbose    bool

	cfg      *Config
	logger   *zap.Logger
	registry *aoc.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2022 solutions",
		Long: `aoc solves Advent of Code 2022 puzzles.

Each day is a pipeline: the raw input is parsed into records, the records
are transformed, and the result is reduced to a single integer answer.
Malformed input stops the pipeline and reports the failing stage and line.

Inputs are read from --input, from the per-day paths in aoc.yaml, or from
<inputs.dir>/day<N>.txt. --sample runs the example from the puzzle text.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	// Disable default completion command
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "aoc.yaml", "path to the config file")
	flags.StringVarP(&a.output, "output", "o", "", "output format: text or yaml (overrides config)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.newRunCmd())
	root.AddCommand(a.newListCmd())
	root.AddCommand(a.newBenchCmd())
	return root
}

// setup loads the config, builds the logger and the puzzle catalogue.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	cfg, err := Load(a.configPath)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output = a.output
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	level, err := cfg.Log.ZapLevel()
	if err != nil {
		return err
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	if a.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.registry, err = catalogue()
	if err != nil {
		return fmt.Errorf("failed to build catalogue: %w", err)
	}

	a.logger.Debug("configured",
		zap.String("config", a.configPath),
		zap.String("inputs", cfg.Inputs.Dir),
		zap.String("output", cfg.Output))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
