package aoc

import (
	"context"
	"time"
)

// Apply creates a Processor from a function that transforms the state and
// may fail. Parsing stages are Apply stages: a malformed line returns an
// error and the pipeline stops immediately, wrapped with the stage name.
//
// Example:
//
//	parsePairs := aoc.Apply(ParsePairsName, func(_ context.Context, s cleanup) (cleanup, error) {
//	    pairs, err := ParsePairs(s.input)
//	    if err != nil {
//	        return s, err
//	    }
//	    s.pairs = pairs
//	    return s, nil
//	})
func Apply[T any](name Name, fn func(context.Context, T) (T, error)) Processor[T] {
	return Processor[T]{
		name: name,
		fn: func(ctx context.Context, value T) (result T, err error) {
			defer recoverFromPanic(&result, &err, name, value)
			start := time.Now()
			result, err = fn(ctx, value)
			if err != nil {
				var zero T
				return zero, newError(name, value, err, start)
			}
			return result, nil
		},
	}
}
