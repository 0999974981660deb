// Package testing provides test utilities for puzzle solvers and the
// pipeline stages they are built from.
//
// It includes a mock stage, assertions over solver answers and error
// kinds, and helpers for checking that a solver is a pure function of its
// input.
//
// Example usage:
//
//	func TestPart1(t *testing.T) {
//		aoctesting.AssertAnswer(t, day4.Part1, day4.Sample, 2)
//		aoctesting.AssertMalformed(t, day4.Part1, "2-4;6-8")
//		aoctesting.AssertStable(t, day4.Part1, day4.Sample, 8)
//	}
package testing

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chris-olszewski/aoc2022"
)

// MockProcessor provides a configurable mock implementation of
// aoc.Chainable[T]. It tracks calls and lets a test configure the
// returned value, an error, a delay or a panic.
type MockProcessor[T any] struct { //nolint:govet // fieldalignment: test helper
	t           *testing.T
	name        string
	callCount   int64
	lastInput   T
	returnVal   T
	returnErr   error
	passThrough bool
	delay       time.Duration
	panicMsg    string
	mu          sync.RWMutex
	callHistory []MockCall[T]
	maxHistory  int
}

// MockCall represents a single call to the mock processor.
type MockCall[T any] struct {
	Input     T
	Timestamp time.Time
}

// NewMockProcessor creates a mock stage that returns its input unchanged
// until configured otherwise.
func NewMockProcessor[T any](t *testing.T, name string) *MockProcessor[T] {
	return &MockProcessor[T]{
		t:           t,
		name:        name,
		passThrough: true,
		maxHistory:  100,
	}
}

// WithReturn configures the mock to return specific values.
func (m *MockProcessor[T]) WithReturn(val T, err error) *MockProcessor[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.returnVal = val
	m.returnErr = err
	m.passThrough = false
	return m
}

// WithDelay configures the mock to delay execution.
func (m *MockProcessor[T]) WithDelay(d time.Duration) *MockProcessor[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
	return m
}

// WithPanic configures the mock to panic with msg.
func (m *MockProcessor[T]) WithPanic(msg string) *MockProcessor[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panicMsg = msg
	return m
}

// WithHistorySize configures how many calls to keep in history.
// Set to 0 to disable history tracking.
func (m *MockProcessor[T]) WithHistorySize(size int) *MockProcessor[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.maxHistory = size
	if size == 0 {
		m.callHistory = nil
	} else if len(m.callHistory) > size {
		m.callHistory = m.callHistory[len(m.callHistory)-size:]
	}
	return m
}

// Name returns the name of the mock processor.
func (m *MockProcessor[T]) Name() aoc.Name {
	return m.name
}

// Process implements aoc.Chainable[T].
func (m *MockProcessor[T]) Process(ctx context.Context, data T) (T, error) {
	atomic.AddInt64(&m.callCount, 1)

	m.mu.Lock()
	m.lastInput = data
	if m.maxHistory > 0 {
		m.callHistory = append(m.callHistory, MockCall[T]{Input: data, Timestamp: time.Now()})
		if len(m.callHistory) > m.maxHistory {
			m.callHistory = m.callHistory[1:]
		}
	}
	delay := m.delay
	returnVal := m.returnVal
	returnErr := m.returnErr
	passThrough := m.passThrough
	panicMsg := m.panicMsg
	m.mu.Unlock()

	if panicMsg != "" {
		panic(panicMsg)
	}

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return data, ctx.Err()
		}
	}

	if passThrough {
		return data, nil
	}
	return returnVal, returnErr
}

// CallCount returns the number of times Process has been called.
func (m *MockProcessor[T]) CallCount() int {
	return int(atomic.LoadInt64(&m.callCount))
}

// LastInput returns the input from the most recent call.
func (m *MockProcessor[T]) LastInput() T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastInput
}

// CallHistory returns a copy of all recorded calls.
func (m *MockProcessor[T]) CallHistory() []MockCall[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.maxHistory == 0 {
		return nil
	}
	history := make([]MockCall[T], len(m.callHistory))
	copy(history, m.callHistory)
	return history
}

// Reset clears all call tracking.
func (m *MockProcessor[T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	atomic.StoreInt64(&m.callCount, 0)
	m.lastInput = *new(T)
	m.callHistory = nil
}

// AssertProcessed verifies that a mock processor was called exactly n times.
func AssertProcessed[T any](t testing.TB, mock *MockProcessor[T], expectedCalls int) {
	t.Helper()
	if actual := mock.CallCount(); actual != expectedCalls {
		t.Errorf("expected mock processor %s to be called %d times, but was called %d times",
			mock.name, expectedCalls, actual)
	}
}

// AssertNotProcessed verifies that a mock processor was never called.
func AssertNotProcessed[T any](t testing.TB, mock *MockProcessor[T]) {
	t.Helper()
	AssertProcessed(t, mock, 0)
}

// AssertProcessedWith verifies the most recent input of a mock processor.
func AssertProcessedWith[T comparable](t testing.TB, mock *MockProcessor[T], expectedInput T) {
	t.Helper()
	if mock.CallCount() == 0 {
		t.Errorf("expected mock processor %s to be called with input %v, but it was never called",
			mock.name, expectedInput)
		return
	}
	if actual := mock.LastInput(); actual != expectedInput {
		t.Errorf("expected mock processor %s to be called with input %v, but was called with %v",
			mock.name, expectedInput, actual)
	}
}

// Solver assertions

// AssertAnswer runs solver over input and checks the answer.
func AssertAnswer(t testing.TB, solver aoc.Solver, input string, want int) {
	t.Helper()
	got, err := solver(context.Background(), input)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
		return
	}
	if got != want {
		t.Errorf("expected answer %d, got %d", want, got)
	}
}

// AssertErrorIs runs solver over input and checks that it fails with target.
func AssertErrorIs(t testing.TB, solver aoc.Solver, input string, target error) {
	t.Helper()
	got, err := solver(context.Background(), input)
	if err == nil {
		t.Errorf("expected %v, got answer %d", target, got)
		return
	}
	if !errors.Is(err, target) {
		t.Errorf("expected %v, got %v", target, err)
	}
}

// AssertMalformed checks that solver rejects input as malformed.
func AssertMalformed(t testing.TB, solver aoc.Solver, input string) {
	t.Helper()
	AssertErrorIs(t, solver, input, aoc.ErrMalformedInput)
}

// AssertViolated checks that solver reports a broken puzzle guarantee.
func AssertViolated(t testing.TB, solver aoc.Solver, input string) {
	t.Helper()
	AssertErrorIs(t, solver, input, aoc.ErrGuaranteeViolated)
}

// AssertStable runs solver over input from several goroutines at once and
// checks that every run agrees with the first.
func AssertStable(t testing.TB, solver aoc.Solver, input string, goroutines int) {
	t.Helper()
	want, wantErr := solver(context.Background(), input)

	var mu sync.Mutex
	var mismatches int
	ParallelTest(goroutines, func(int) {
		got, err := solver(context.Background(), input)
		if got != want || (err == nil) != (wantErr == nil) {
			mu.Lock()
			mismatches++
			mu.Unlock()
		}
	})
	if mismatches > 0 {
		t.Errorf("%d of %d concurrent runs disagreed with answer %d (err %v)", mismatches, goroutines, want, wantErr)
	}
}

// SolveSample solves both parts of p over its embedded sample.
func SolveSample(t testing.TB, p aoc.Puzzle) (part1, part2 int) {
	t.Helper()
	ctx := context.Background()
	var err error
	if part1, err = p.Solve(ctx, aoc.PartOne, p.Sample); err != nil {
		t.Fatalf("day %d %s: %v", p.Day, aoc.PartOne, err)
	}
	if part2, err = p.Solve(ctx, aoc.PartTwo, p.Sample); err != nil {
		t.Fatalf("day %d %s: %v", p.Day, aoc.PartTwo, err)
	}
	return part1, part2
}

// Helper Functions

// WaitForCalls waits for a mock processor to be called at least n times,
// with a timeout. Returns true if the expected calls were reached.
func WaitForCalls[T any](mock *MockProcessor[T], expectedCalls int, timeout time.Duration) bool {
	start := time.Now()
	for time.Since(start) < timeout {
		if mock.CallCount() >= expectedCalls {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// ParallelTest runs fn from n goroutines and waits for all of them.
func ParallelTest(goroutines int, fn func(int)) {
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			fn(id)
		}(i)
	}
	wg.Wait()
}
