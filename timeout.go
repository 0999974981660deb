package aoc

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Timeout bounds how long the wrapped stage may run. The stage receives a
// context carrying the deadline; if it has not returned by then, Timeout
// returns the original input and an *Error with Timeout set.
//
// Stages that never look at their context keep running in the background
// after the deadline, but their result is discarded.
//
// Example:
//
//	bounded := aoc.NewTimeout("day4-deadline", day4Pipeline, 5*time.Second)
type Timeout[T any] struct {
	processor Chainable[T]
	name      Name
	duration  time.Duration
	mu        sync.RWMutex
}

// NewTimeout creates a new Timeout connector.
func NewTimeout[T any](name Name, processor Chainable[T], duration time.Duration) *Timeout[T] {
	return &Timeout[T]{
		name:      name,
		processor: processor,
		duration:  duration,
	}
}

// Process implements the Chainable interface.
func (t *Timeout[T]) Process(ctx context.Context, data T) (T, error) {
	t.mu.RLock()
	processor := t.processor
	duration := t.duration
	t.mu.RUnlock()

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	type outcome struct {
		result T
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		var o outcome
		defer func() { done <- o }()
		defer recoverFromPanic(&o.result, &o.err, processor.Name(), data)
		o.result, o.err = processor.Process(ctx, data)
	}()

	select {
	case o := <-done:
		if o.err == nil {
			return o.result, nil
		}
		var pipeErr *Error[T]
		if errors.As(o.err, &pipeErr) {
			pipeErr.Path = append([]Name{t.name}, pipeErr.Path...)
			return o.result, pipeErr
		}
		return o.result, &Error[T]{
			Timestamp: time.Now(),
			InputData: data,
			Err:       o.err,
			Path:      []Name{t.name},
			Duration:  time.Since(start),
		}
	case <-ctx.Done():
		return data, &Error[T]{
			Err:       ctx.Err(),
			InputData: data,
			Path:      []Name{t.name},
			Duration:  time.Since(start),
			Timeout:   errors.Is(ctx.Err(), context.DeadlineExceeded),
			Canceled:  errors.Is(ctx.Err(), context.Canceled),
			Timestamp: time.Now(),
		}
	}
}

// SetDuration updates the timeout duration.
func (t *Timeout[T]) SetDuration(d time.Duration) *Timeout[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.duration = d
	return t
}

// Duration returns the current timeout duration.
func (t *Timeout[T]) Duration() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.duration
}

// Name returns the name of this connector.
func (t *Timeout[T]) Name() Name {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.name
}
