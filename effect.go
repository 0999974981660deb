package aoc

import (
	"context"
	"time"
)

// Effect creates a Processor that checks or observes the state without
// changing it. Returning an error stops the pipeline; returning nil passes
// the state through untouched. Days use it to assert a puzzle guarantee
// between parsing and reduction.
//
// Example:
//
//	nonEmpty := aoc.Effect(RequireGroupsName, func(_ context.Context, s inventory) error {
//	    if len(s.groups) == 0 {
//	        return aoc.Violatedf("no elves in input")
//	    }
//	    return nil
//	})
func Effect[T any](name Name, fn func(context.Context, T) error) Processor[T] {
	return Processor[T]{
		name: name,
		fn: func(ctx context.Context, value T) (result T, err error) {
			defer recoverFromPanic(&result, &err, name, value)
			start := time.Now()
			if err := fn(ctx, value); err != nil {
				var zero T
				return zero, newError(name, value, err, start)
			}
			return value, nil
		},
	}
}
