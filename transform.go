package aoc

import "context"

// Transform creates a Processor that applies a function that cannot fail.
// Reductions (sum, count, max) are Transform stages.
//
// Example:
//
//	countContained := aoc.Transform(CountContainedName, func(_ context.Context, s cleanup) cleanup {
//	    s.answer = aoc.CountFunc(s.pairs, Pair.FullyContained)
//	    return s
//	})
func Transform[T any](name Name, fn func(context.Context, T) T) Processor[T] {
	return Processor[T]{
		name: name,
		fn: func(ctx context.Context, value T) (result T, err error) {
			defer recoverFromPanic(&result, &err, name, value)
			result = fn(ctx, value)
			return result, nil
		},
	}
}
