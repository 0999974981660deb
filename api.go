package aoc

import "context"

// Chainable defines the interface for any component that can process
// values of type T. Stages and sequences both implement it, so a sequence
// can be nested inside another sequence.
//
// Key design principles:
//   - Context support for cancellation
//   - Type safety through generics
//   - Error propagation for fail-fast behavior
//   - Named components so failures report where they happened
type Chainable[T any] interface {
	Process(context.Context, T) (T, error)
	Name() Name
}

// Name is the name of a stage or sequence. Each day declares its stage
// names as constants:
//
//	const (
//	    ParsePairsName     aoc.Name = "parse-pairs"
//	    CountContainedName aoc.Name = "count-contained"
//	)
type Name = string

// Processor is a named pipeline stage created by Apply, Transform or
// Effect. The function is private so every stage goes through an adapter
// and gets the same error wrapping and panic recovery.
//
// Names appear in Error[T].Path, so keep them short and action-oriented
// ("parse-rounds", not "rounds").
type Processor[T any] struct {
	fn   func(context.Context, T) (T, error)
	name Name
}

// Process implements the Chainable interface.
func (p Processor[T]) Process(ctx context.Context, data T) (T, error) {
	return p.fn(ctx, data)
}

// Name returns the name of the processor.
func (p Processor[T]) Name() Name {
	return p.name
}
