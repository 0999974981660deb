package day3

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chris-olszewski/aoc2022"
)

func TestPriority(t *testing.T) {
	tests := []struct {
		item Item
		want int
	}{
		{'a', 1}, {'p', 16}, {'z', 26},
		{'A', 27}, {'L', 38}, {'Z', 52},
	}
	for _, tt := range tests {
		got, err := tt.item.Priority()
		if err != nil {
			t.Fatalf("Priority(%v): unexpected error: %v", tt.item, err)
		}
		if got != tt.want {
			t.Errorf("Priority(%v) = %d, want %d", tt.item, got, tt.want)
		}
	}

	for _, bad := range []Item{'0', ' ', '-', 0xff} {
		if _, err := bad.Priority(); !errors.Is(err, aoc.ErrMalformedInput) {
			t.Errorf("Priority(%q): expected ErrMalformedInput, got %v", rune(bad), err)
		}
	}
}

func TestRucksack(t *testing.T) {
	t.Run("Splits Halves", func(t *testing.T) {
		r, err := ParseRucksack("vJrwpWtwJgWrhcsFMMfFFhFp")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Rucksack{Left: "vJrwpWtwJgWr", Right: "hcsFMMfFFhFp"}
		if r != want {
			t.Errorf("got %+v, want %+v", r, want)
		}

		item, err := r.CommonItem()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item != 'p' {
			t.Errorf("common item = %v, want p", item)
		}
		if p, _ := item.Priority(); p != 16 {
			t.Errorf("priority = %d, want 16", p)
		}
	})

	t.Run("Odd Length", func(t *testing.T) {
		if _, err := ParseRucksack("abc"); !errors.Is(err, aoc.ErrMalformedInput) {
			t.Errorf("expected ErrMalformedInput, got %v", err)
		}
	})

	t.Run("No Common Item", func(t *testing.T) {
		r, _ := ParseRucksack("abcdef")
		if _, err := r.CommonItem(); !errors.Is(err, aoc.ErrGuaranteeViolated) {
			t.Errorf("expected ErrGuaranteeViolated, got %v", err)
		}
	})

	t.Run("Common Item Follows Right Compartment Order", func(t *testing.T) {
		r := Rucksack{Left: "abXY", Right: "YXcd"}
		item, err := r.CommonItem()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item != 'Y' {
			t.Errorf("expected Y, got %v", item)
		}
	})

	t.Run("Items Deduplicates In Order", func(t *testing.T) {
		r := Rucksack{Left: "abca", Right: "cdbe"}
		want := []Item{'a', 'b', 'c', 'd', 'e'}
		if diff := cmp.Diff(want, r.Items().Items()); diff != "" {
			t.Errorf("items mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBadge(t *testing.T) {
	rs, err := ParseRucksacks(Sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := Badge(rs[0], rs[1], rs[2])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 'r' {
		t.Errorf("first group badge = %v, want r", first)
	}

	second, err := Badge(rs[3], rs[4], rs[5])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != 'Z' {
		t.Errorf("second group badge = %v, want Z", second)
	}

	t.Run("Ambiguous Takes First In Order", func(t *testing.T) {
		a := Rucksack{Left: "xy", Right: "zw"}
		b := Rucksack{Left: "yx", Right: "qq"}
		c := Rucksack{Left: "yx", Right: "rr"}
		got, err := Badge(a, b, c)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 'x' {
			t.Errorf("expected x, got %v", got)
		}
	})

	t.Run("Nothing Shared", func(t *testing.T) {
		a := Rucksack{Left: "a", Right: "a"}
		b := Rucksack{Left: "b", Right: "b"}
		c := Rucksack{Left: "a", Right: "b"}
		if _, err := Badge(a, b, c); !errors.Is(err, aoc.ErrGuaranteeViolated) {
			t.Errorf("expected ErrGuaranteeViolated, got %v", err)
		}
	})
}

func TestParts(t *testing.T) {
	ctx := context.Background()

	got, err := Part1(ctx, Sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 157 {
		t.Errorf("Part1 = %d, want 157", got)
	}

	got, err = Part2(ctx, Sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 70 {
		t.Errorf("Part2 = %d, want 70", got)
	}

	t.Run("Group Count Not Multiple Of Three", func(t *testing.T) {
		_, err := Part2(ctx, "aa\nbb\n")
		if !errors.Is(err, aoc.ErrMalformedInput) {
			t.Fatalf("expected ErrMalformedInput, got %v", err)
		}
		var pipeErr *aoc.Error[packing]
		if !errors.As(err, &pipeErr) {
			t.Fatalf("expected *aoc.Error, got %T", err)
		}
		if diff := cmp.Diff([]string{Part2Name, BadgesName}, pipeErr.Path); diff != "" {
			t.Errorf("path mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Blank Line Has No Common Item", func(t *testing.T) {
		_, err := Part1(ctx, "aa\n\nbb\n")
		if !errors.Is(err, aoc.ErrGuaranteeViolated) {
			t.Fatalf("expected ErrGuaranteeViolated, got %v", err)
		}
	})
}
