package aoc

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Failure kinds. Both are unrecoverable: a puzzle input is a fixed,
// trusted file, so anything unexpected aborts the computation.
var (
	// ErrMalformedInput marks unparseable tokens, wrong field counts and
	// lengths that do not fit the puzzle's line format.
	ErrMalformedInput = errors.New("malformed input")

	// ErrGuaranteeViolated marks input that parses but breaks a promise the
	// puzzle statement makes, such as exactly one shared item per rucksack.
	ErrGuaranteeViolated = errors.New("puzzle guarantee violated")
)

// Malformedf returns an error wrapping ErrMalformedInput.
func Malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

// Violatedf returns an error wrapping ErrGuaranteeViolated.
func Violatedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrGuaranteeViolated, fmt.Sprintf(format, args...))
}

// LineError locates a failure in the input. Line is 1-based.
type LineError struct {
	Err  error
	Text string
	Line int
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// JobError names the puzzle part a batch failure came from.
type JobError struct {
	Err  error
	Day  int
	Part Part
}

func (e *JobError) Error() string {
	return fmt.Sprintf("day %d %s: %v", e.Day, e.Part, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// Error provides rich context about pipeline execution failures.
// It wraps the underlying error with the stage path, the state the failing
// stage received, and timing.
//
// Path is built outermost first as the error bubbles up, so a parse failure
// in day 4 reads ["day4-part1", "parse-pairs"].
type Error[T any] struct {
	Timestamp time.Time
	InputData T
	Err       error
	Path      []Name
	Duration  time.Duration
	Timeout   bool
	Canceled  bool
}

// Error formats as "<path> failed after <duration>: <cause>".
func (e *Error[T]) Error() string {
	path := strings.Join(e.Path, " -> ")

	if e.Timeout {
		return fmt.Sprintf("%s timed out after %v: %v", path, e.Duration, e.Err)
	}
	if e.Canceled {
		return fmt.Sprintf("%s canceled after %v: %v", path, e.Duration, e.Err)
	}
	return fmt.Sprintf("%s failed after %v: %v", path, e.Duration, e.Err)
}

// Unwrap returns the underlying error so errors.Is reaches the sentinels.
func (e *Error[T]) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether the pipeline stopped on a deadline.
func (e *Error[T]) IsTimeout() bool {
	return e.Timeout || errors.Is(e.Err, context.DeadlineExceeded)
}

// IsCanceled reports whether the pipeline stopped on cancellation.
func (e *Error[T]) IsCanceled() bool {
	return e.Canceled || errors.Is(e.Err, context.Canceled)
}

// newError wraps err for a stage that failed after running since start.
func newError[T any](name Name, input T, err error, start time.Time) *Error[T] {
	now := time.Now()
	return &Error[T]{
		Path:      []Name{name},
		InputData: input,
		Err:       err,
		Timestamp: now,
		Duration:  now.Sub(start),
		Timeout:   errors.Is(err, context.DeadlineExceeded),
		Canceled:  errors.Is(err, context.Canceled),
	}
}

// panicError is the cause recorded when a stage panics.
type panicError struct {
	name    Name
	message string
}

func (p *panicError) Error() string {
	return fmt.Sprintf("stage %q panicked: %s", p.name, p.message)
}

// recoverFromPanic turns a panic inside a stage into an *Error[T].
// It must be deferred directly by the stage function.
func recoverFromPanic[T any](result *T, err *error, name Name, input T) {
	r := recover()
	if r == nil {
		return
	}
	var zero T
	*result = zero
	*err = &Error[T]{
		Path:      []Name{name},
		InputData: input,
		Err:       &panicError{name: name, message: sanitizePanicMessage(r)},
		Timestamp: time.Now(),
	}
}

var addressRx = regexp.MustCompile(`0x[0-9a-fA-F]+`)

const maxPanicMessage = 200

// sanitizePanicMessage keeps panic text short and free of paths, stacks
// and addresses before it ends up in an error message.
func sanitizePanicMessage(r any) string {
	if r == nil {
		return "unknown panic (nil value)"
	}

	var msg string
	switch v := r.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	default:
		msg = fmt.Sprintf("%v", v)
	}

	if strings.Contains(msg, "goroutine ") || strings.Contains(msg, "runtime.") {
		return "panic occurred (stack trace sanitized)"
	}
	if strings.Contains(msg, ".go:") && (strings.Contains(msg, "/") || strings.Contains(msg, `\`)) {
		return "panic occurred (file path sanitized)"
	}
	if len(msg) > maxPanicMessage {
		return "panic occurred (message truncated for security)"
	}
	return "panic occurred: " + addressRx.ReplaceAllString(msg, "0x***")
}
