package aoc

import (
	"context"
	"errors"
	"testing"
)

func TestEffect(t *testing.T) {
	t.Run("Effect Passes Value Through", func(t *testing.T) {
		calls := 0
		check := Effect("require-positive", func(_ context.Context, n int) error {
			calls++
			if n <= 0 {
				return Violatedf("%d is not positive", n)
			}
			return nil
		})

		result, err := check.Process(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != 5 {
			t.Errorf("expected 5, got %d", result)
		}
		if calls != 1 {
			t.Errorf("expected one call, got %d", calls)
		}
	})

	t.Run("Effect Error", func(t *testing.T) {
		check := Effect("require-positive", func(_ context.Context, n int) error {
			return Violatedf("%d is not positive", n)
		})

		_, err := check.Process(context.Background(), -1)
		if !errors.Is(err, ErrGuaranteeViolated) {
			t.Fatalf("expected ErrGuaranteeViolated, got %v", err)
		}
		var aocErr *Error[int]
		if !errors.As(err, &aocErr) || aocErr.InputData != -1 {
			t.Errorf("expected *Error[int] carrying input -1, got %v", err)
		}
	})
}
