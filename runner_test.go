package aoc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestRunner(t *testing.T) {
	ctx := context.Background()
	clock := clockz.NewFakeClock()

	p := Puzzle{
		Day:    7,
		Title:  "Counting",
		Sample: "a\nb\n",
		PartOne: func(_ context.Context, input string) (int, error) {
			clock.Advance(150 * time.Millisecond)
			return len(Lines(input)), nil
		},
		PartTwo: func(_ context.Context, input string) (int, error) {
			if input == "" {
				return 0, Violatedf("no lines")
			}
			return len(input), nil
		},
	}

	t.Run("Run", func(t *testing.T) {
		r := NewRunner().WithClock(clock)
		defer r.Close()

		report, err := r.Run(ctx, p, PartOne, "x\ny\nz\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Answer != 3 {
			t.Errorf("expected answer 3, got %d", report.Answer)
		}
		if report.Duration != 150*time.Millisecond {
			t.Errorf("expected 150ms, got %v", report.Duration)
		}
		if report.Day != 7 || report.Part != PartOne || report.Title != "Counting" || report.Sample {
			t.Errorf("unexpected report %+v", report)
		}
		if report.Digest != Digest("x\ny\nz\n") || len(report.Digest) != 64 {
			t.Errorf("unexpected digest %q", report.Digest)
		}
	})

	t.Run("Rerun Is Stable", func(t *testing.T) {
		r := NewRunner().WithClock(clock)
		defer r.Close()

		first, err := r.Run(ctx, p, PartTwo, "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := r.Run(ctx, p, PartTwo, "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Answer != second.Answer || first.Digest != second.Digest {
			t.Errorf("reruns differ: %+v vs %+v", first, second)
		}
		if Digest("hello") == Digest("hello\n") {
			t.Error("digests should distinguish different inputs")
		}
	})

	t.Run("RunSample", func(t *testing.T) {
		r := NewRunner().WithClock(clock)
		defer r.Close()

		report, err := r.RunSample(ctx, p, PartOne)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.Sample || report.Answer != 2 {
			t.Errorf("unexpected sample report %+v", report)
		}
	})

	t.Run("Failure Metrics And Hooks", func(t *testing.T) {
		r := NewRunner().WithClock(clock)
		defer r.Close()

		var mu sync.Mutex
		var failed []RunEvent
		_ = r.OnFailed(func(_ context.Context, e RunEvent) error {
			mu.Lock()
			failed = append(failed, e)
			mu.Unlock()
			return nil
		})

		_, err := r.Run(ctx, p, PartTwo, "")
		if !errors.Is(err, ErrGuaranteeViolated) {
			t.Fatalf("expected ErrGuaranteeViolated, got %v", err)
		}
		if v := r.Metrics().Counter(RunnerRunsTotal).Value(); v != 1 {
			t.Errorf("expected 1 run, got %f", v)
		}
		if v := r.Metrics().Counter(RunnerFailuresTotal).Value(); v != 1 {
			t.Errorf("expected 1 failure, got %f", v)
		}

		// Wait for async hooks to fire
		time.Sleep(50 * time.Millisecond)

		mu.Lock()
		defer mu.Unlock()
		if len(failed) != 1 || failed[0].Report.Day != 7 || !errors.Is(failed[0].Err, ErrGuaranteeViolated) {
			t.Errorf("unexpected failure events %+v", failed)
		}
	})

	t.Run("Deadline", func(t *testing.T) {
		r := NewRunner().WithTimeout(20 * time.Millisecond)
		defer r.Close()

		stuck := Puzzle{Day: 8, PartOne: func(ctx context.Context, _ string) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		}}
		_, err := r.Run(ctx, stuck, PartOne, "x")
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected DeadlineExceeded, got %v", err)
		}
		var aocErr *Error[attempt]
		if !errors.As(err, &aocErr) || !aocErr.IsTimeout() || aocErr.Path[0] != RunnerDeadlineName {
			t.Errorf("expected timeout error from the deadline stage, got %v", err)
		}

		report, err := r.Run(ctx, p, PartTwo, "abc")
		if err != nil || report.Answer != 3 {
			t.Errorf("expected answer 3 within deadline, got %d, %v", report.Answer, err)
		}
	})

	t.Run("Missing Part", func(t *testing.T) {
		r := NewRunner()
		defer r.Close()
		if _, err := r.Run(ctx, Puzzle{Day: 1}, PartOne, "x"); err == nil {
			t.Error("expected error for puzzle without solvers")
		}
	})
}
