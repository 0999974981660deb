package aoc

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Observability constants for the Sequence connector.
const (
	// Metrics.
	SequenceProcessedTotal  = metricz.Key("sequence.processed.total")
	SequenceSuccessesTotal  = metricz.Key("sequence.successes.total")
	SequenceFailuresTotal   = metricz.Key("sequence.failures.total")
	SequenceStagesCompleted = metricz.Key("sequence.stages.completed")
	SequenceStagesTotal     = metricz.Key("sequence.stages.total")
	SequenceDurationMs      = metricz.Key("sequence.duration.ms")

	// Spans.
	SequenceProcessSpan = tracez.Key("sequence.process")
	SequenceStageSpan   = tracez.Key("sequence.stage")

	// Tags.
	SequenceTagStageCount  = tracez.Tag("sequence.stage_count")
	SequenceTagStageNumber = tracez.Tag("sequence.stage_number")
	SequenceTagStageName   = tracez.Tag("sequence.stage_name")
	SequenceTagSuccess     = tracez.Tag("sequence.success")
	SequenceTagError       = tracez.Tag("sequence.error")

	// Hook event keys.
	SequenceEventStageComplete = hookz.Key("sequence.stage_complete")
	SequenceEventAllComplete   = hookz.Key("sequence.all_complete")
)

// SequenceEvent is emitted via hookz when a stage finishes and when the
// whole sequence has succeeded.
type SequenceEvent struct {
	Timestamp       time.Time
	Error           error
	Name            Name
	StageName       Name
	StageNumber     int // 1-based
	TotalStages     int
	CompletedStages int
	Duration        time.Duration
	TotalDuration   time.Duration
	Success         bool
}

// Sequence runs its stages in order, feeding each stage the previous
// stage's output. The first failure stops the run and is returned as an
// *Error[T] whose path starts with the sequence name.
//
// Every part of every day is one Sequence:
//
//	seq := aoc.NewSequence(Part2Name,
//	    aoc.Apply(ParseRucksacksName, parseRucksacks),
//	    aoc.Apply(BadgesName, sumBadges),
//	)
//	defer seq.Close()
//
// # Observability
//
// Metrics:
//   - sequence.processed.total, sequence.successes.total, sequence.failures.total
//   - sequence.stages.completed, sequence.stages.total, sequence.duration.ms
//
// Traces:
//   - sequence.process: one span per run
//   - sequence.stage: one span per stage
//
// Events (via hooks):
//   - sequence.stage_complete: after every stage, successful or not
//   - sequence.all_complete: after all stages succeed
type Sequence[T any] struct {
	clock      clockz.Clock
	metrics    *metricz.Registry
	tracer     *tracez.Tracer
	hooks      *hookz.Hooks[SequenceEvent]
	name       Name
	processors []Chainable[T]
	mu         sync.RWMutex
}

// NewSequence creates a Sequence with optional initial stages.
func NewSequence[T any](name Name, processors ...Chainable[T]) *Sequence[T] {
	metrics := metricz.New()
	metrics.Counter(SequenceProcessedTotal)
	metrics.Counter(SequenceSuccessesTotal)
	metrics.Counter(SequenceFailuresTotal)
	metrics.Gauge(SequenceStagesCompleted)
	metrics.Gauge(SequenceStagesTotal)
	metrics.Gauge(SequenceDurationMs)

	return &Sequence[T]{
		name:       name,
		processors: slices.Clone(processors),
		metrics:    metrics,
		tracer:     tracez.New(),
		hooks:      hookz.New[SequenceEvent](),
	}
}

// Register appends stages to the sequence.
func (c *Sequence[T]) Register(processors ...Chainable[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.processors = append(c.processors, processors...)
}

// Process runs every stage on value. The context is checked before each
// stage; a canceled context stops the run with an *Error[T].
func (c *Sequence[T]) Process(ctx context.Context, value T) (result T, err error) {
	defer recoverFromPanic(&result, &err, c.name, value)

	c.mu.RLock()
	processors := slices.Clone(c.processors)
	c.mu.RUnlock()

	if ctx == nil {
		ctx = context.Background()
	}

	clock := c.getClock()
	c.metrics.Counter(SequenceProcessedTotal).Inc()
	c.metrics.Gauge(SequenceStagesTotal).Set(float64(len(processors)))
	start := clock.Now()

	ctx, span := c.tracer.StartSpan(ctx, SequenceProcessSpan)
	span.SetTag(SequenceTagStageCount, strconv.Itoa(len(processors)))
	defer func() {
		c.metrics.Gauge(SequenceDurationMs).Set(float64(clock.Since(start).Milliseconds()))
		if err == nil {
			span.SetTag(SequenceTagSuccess, "true")
			c.metrics.Counter(SequenceSuccessesTotal).Inc()
		} else {
			span.SetTag(SequenceTagSuccess, "false")
			span.SetTag(SequenceTagError, err.Error())
			c.metrics.Counter(SequenceFailuresTotal).Inc()
		}
		span.Finish()
	}()

	result = value
	completed := 0

	for i, proc := range processors {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, &Error[T]{
				Err:       ctxErr,
				InputData: value,
				Path:      []Name{c.name},
				Timeout:   errors.Is(ctxErr, context.DeadlineExceeded),
				Canceled:  errors.Is(ctxErr, context.Canceled),
				Timestamp: clock.Now(),
				Duration:  clock.Since(start),
			}
		}

		stageCtx, stageSpan := c.tracer.StartSpan(ctx, SequenceStageSpan)
		stageSpan.SetTag(SequenceTagStageNumber, strconv.Itoa(i+1))
		stageSpan.SetTag(SequenceTagStageName, proc.Name())

		stageStart := clock.Now()
		result, err = proc.Process(stageCtx, result)
		stageDuration := clock.Since(stageStart)
		stageSpan.Finish()

		_ = c.hooks.Emit(ctx, SequenceEventStageComplete, SequenceEvent{ //nolint:errcheck
			Name:        c.name,
			StageName:   proc.Name(),
			StageNumber: i + 1,
			TotalStages: len(processors),
			Success:     err == nil,
			Error:       err,
			Duration:    stageDuration,
			Timestamp:   clock.Now(),
		})

		if err != nil {
			var pipeErr *Error[T]
			if errors.As(err, &pipeErr) {
				pipeErr.Path = append([]Name{c.name}, pipeErr.Path...)
				pipeErr.Duration = clock.Since(start)
				return result, pipeErr
			}
			return result, &Error[T]{
				Timestamp: clock.Now(),
				InputData: value,
				Err:       err,
				Path:      []Name{c.name, proc.Name()},
				Duration:  clock.Since(start),
			}
		}

		completed++
		c.metrics.Gauge(SequenceStagesCompleted).Set(float64(completed))
	}

	_ = c.hooks.Emit(ctx, SequenceEventAllComplete, SequenceEvent{ //nolint:errcheck
		Name:            c.name,
		TotalStages:     len(processors),
		CompletedStages: completed,
		TotalDuration:   clock.Since(start),
		Success:         true,
		Timestamp:       clock.Now(),
	})

	return result, nil
}

// Len returns the number of stages.
func (c *Sequence[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.processors)
}

// Unshift adds stages to the front of the sequence.
func (c *Sequence[T]) Unshift(processors ...Chainable[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.processors = slices.Insert(c.processors, 0, processors...)
}

// Push adds stages to the back of the sequence.
func (c *Sequence[T]) Push(processors ...Chainable[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.processors = append(c.processors, processors...)
}

// Names returns the stage names in order.
func (c *Sequence[T]) Names() []Name {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]Name, len(c.processors))
	for i, proc := range c.processors {
		names[i] = proc.Name()
	}
	return names
}

// Remove removes the first stage with the given name.
func (c *Sequence[T]) Remove(name Name) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(name)
	if i < 0 {
		return fmt.Errorf("stage %q not found", name)
	}
	c.processors = slices.Delete(c.processors, i, i+1)
	return nil
}

// Replace swaps the first stage with the given name.
func (c *Sequence[T]) Replace(name Name, processor Chainable[T]) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(name)
	if i < 0 {
		return fmt.Errorf("stage %q not found", name)
	}
	c.processors[i] = processor
	return nil
}

// After inserts stages after the first stage with the given name.
func (c *Sequence[T]) After(afterName Name, processors ...Chainable[T]) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(afterName)
	if i < 0 {
		return fmt.Errorf("stage %q not found", afterName)
	}
	c.processors = slices.Insert(c.processors, i+1, processors...)
	return nil
}

// Before inserts stages before the first stage with the given name.
func (c *Sequence[T]) Before(beforeName Name, processors ...Chainable[T]) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(beforeName)
	if i < 0 {
		return fmt.Errorf("stage %q not found", beforeName)
	}
	c.processors = slices.Insert(c.processors, i, processors...)
	return nil
}

// indexOf must be called with c.mu held.
func (c *Sequence[T]) indexOf(name Name) int {
	return slices.IndexFunc(c.processors, func(p Chainable[T]) bool {
		return p.Name() == name
	})
}

// Name returns the name of this sequence.
func (c *Sequence[T]) Name() Name {
	return c.name
}

// WithClock sets a custom clock for testing.
func (c *Sequence[T]) WithClock(clock clockz.Clock) *Sequence[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock = clock
	return c
}

func (c *Sequence[T]) getClock() clockz.Clock {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.clock == nil {
		return clockz.RealClock
	}
	return c.clock
}

// Metrics returns the metrics registry for this sequence.
func (c *Sequence[T]) Metrics() *metricz.Registry {
	return c.metrics
}

// Tracer returns the tracer for this sequence.
func (c *Sequence[T]) Tracer() *tracez.Tracer {
	return c.tracer
}

// Close shuts down the tracer and hooks.
func (c *Sequence[T]) Close() error {
	if c.tracer != nil {
		c.tracer.Close()
	}
	c.hooks.Close()
	return nil
}

// OnStageComplete registers a handler called after each stage.
// Handlers run asynchronously.
func (c *Sequence[T]) OnStageComplete(handler func(context.Context, SequenceEvent) error) error {
	_, err := c.hooks.Hook(SequenceEventStageComplete, handler)
	return err
}

// OnAllComplete registers a handler called after every stage succeeded.
// Handlers run asynchronously.
func (c *Sequence[T]) OnAllComplete(handler func(context.Context, SequenceEvent) error) error {
	_, err := c.hooks.Hook(SequenceEventAllComplete, handler)
	return err
}
