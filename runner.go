package aoc

import (
	"context"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/zeebo/blake3"
	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for the Runner.
const (
	RunnerRunsTotal     = metricz.Key("runner.runs.total")
	RunnerFailuresTotal = metricz.Key("runner.failures.total")
	RunnerDurationMs    = metricz.Key("runner.duration.ms")

	RunnerSolveSpan = tracez.Key("runner.solve")

	RunnerTagDay     = tracez.Tag("runner.day")
	RunnerTagPart    = tracez.Tag("runner.part")
	RunnerTagSuccess = tracez.Tag("runner.success")
	RunnerTagError   = tracez.Tag("runner.error")

	RunnerEventSolved = hookz.Key("runner.solved")
	RunnerEventFailed = hookz.Key("runner.failed")

	// Stage names used when a deadline is set.
	RunnerDeadlineName Name = "deadline"
	RunnerSolveName    Name = "solve"
)

// Report is the result of solving one part.
type Report struct {
	Title    string        `yaml:"title"`
	Digest   string        `yaml:"digest"`
	Day      int           `yaml:"day"`
	Part     Part          `yaml:"part"`
	Answer   int           `yaml:"answer"`
	Duration time.Duration `yaml:"duration"`
	Sample   bool          `yaml:"sample"`
}

// RunEvent is emitted via hookz after every run.
type RunEvent struct {
	Timestamp time.Time
	Err       error
	Report    Report
}

// Runner solves puzzle parts and reports on them.
type Runner struct {
	clock   clockz.Clock
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[RunEvent]
	timeout time.Duration
}

// NewRunner returns a Runner using the real clock.
func NewRunner() *Runner {
	metrics := metricz.New()
	metrics.Counter(RunnerRunsTotal)
	metrics.Counter(RunnerFailuresTotal)
	metrics.Gauge(RunnerDurationMs)

	return &Runner{
		clock:   clockz.RealClock,
		metrics: metrics,
		tracer:  tracez.New(),
		hooks:   hookz.New[RunEvent](),
	}
}

// WithClock sets a custom clock for testing.
func (r *Runner) WithClock(clock clockz.Clock) *Runner {
	r.clock = clock
	return r
}

// WithTimeout bounds every solve. Zero means no deadline.
func (r *Runner) WithTimeout(d time.Duration) *Runner {
	r.timeout = d
	return r
}

// Run solves part of p over input.
func (r *Runner) Run(ctx context.Context, p Puzzle, part Part, input string) (Report, error) {
	return r.run(ctx, p, part, input, false)
}

// RunSample solves part of p over its embedded example input.
func (r *Runner) RunSample(ctx context.Context, p Puzzle, part Part) (Report, error) {
	return r.run(ctx, p, part, p.Sample, true)
}

func (r *Runner) run(ctx context.Context, p Puzzle, part Part, input string, sample bool) (Report, error) {
	r.metrics.Counter(RunnerRunsTotal).Inc()

	ctx, span := r.tracer.StartSpan(ctx, RunnerSolveSpan)
	defer span.Finish()
	span.SetTag(RunnerTagDay, strconv.Itoa(p.Day))
	span.SetTag(RunnerTagPart, part.String())

	report := Report{
		Title:  p.Title,
		Digest: Digest(input),
		Day:    p.Day,
		Part:   part,
		Sample: sample,
	}

	start := r.clock.Now()
	answer, err := r.solve(ctx, p, part, input)
	report.Duration = r.clock.Since(start)
	r.metrics.Gauge(RunnerDurationMs).Set(float64(report.Duration.Milliseconds()))

	if err != nil {
		r.metrics.Counter(RunnerFailuresTotal).Inc()
		span.SetTag(RunnerTagSuccess, "false")
		span.SetTag(RunnerTagError, err.Error())
		_ = r.hooks.Emit(ctx, RunnerEventFailed, RunEvent{ //nolint:errcheck
			Report:    report,
			Err:       err,
			Timestamp: r.clock.Now(),
		})
		return report, err
	}

	report.Answer = answer
	span.SetTag(RunnerTagSuccess, "true")
	_ = r.hooks.Emit(ctx, RunnerEventSolved, RunEvent{ //nolint:errcheck
		Report:    report,
		Timestamp: r.clock.Now(),
	})
	return report, nil
}

type attempt struct {
	input  string
	answer int
}

func (r *Runner) solve(ctx context.Context, p Puzzle, part Part, input string) (int, error) {
	if r.timeout <= 0 {
		return p.Solve(ctx, part, input)
	}
	stage := NewTimeout[attempt](RunnerDeadlineName, Apply(RunnerSolveName, func(ctx context.Context, a attempt) (attempt, error) {
		answer, err := p.Solve(ctx, part, a.input)
		if err != nil {
			return a, err
		}
		a.answer = answer
		return a, nil
	}), r.timeout)
	out, err := stage.Process(ctx, attempt{input: input})
	if err != nil {
		return 0, err
	}
	return out.answer, nil
}

// Digest returns the hex BLAKE3-256 digest of input.
func Digest(input string) string {
	sum := blake3.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// Metrics returns the metrics registry for this runner.
func (r *Runner) Metrics() *metricz.Registry {
	return r.metrics
}

// Tracer returns the tracer for this runner.
func (r *Runner) Tracer() *tracez.Tracer {
	return r.tracer
}

// OnSolved registers a handler called after a successful run.
// Handlers run asynchronously.
func (r *Runner) OnSolved(handler func(context.Context, RunEvent) error) error {
	_, err := r.hooks.Hook(RunnerEventSolved, handler)
	return err
}

// OnFailed registers a handler called after a failed run.
// Handlers run asynchronously.
func (r *Runner) OnFailed(handler func(context.Context, RunEvent) error) error {
	_, err := r.hooks.Hook(RunnerEventFailed, handler)
	return err
}

// Close shuts down the tracer and hooks.
func (r *Runner) Close() error {
	if r.tracer != nil {
		r.tracer.Close()
	}
	r.hooks.Close()
	return nil
}
