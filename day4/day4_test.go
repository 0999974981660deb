package day4

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chris-olszewski/aoc2022"
)

func TestParsePair(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		p, err := ParsePair("2-8,3-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Pair{A: Range{2, 8}, B: Range{3, 7}}
		if diff := cmp.Diff(want, p); diff != "" {
			t.Errorf("pair mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Large Sections", func(t *testing.T) {
		p, err := ParsePair("3000000000-3000000005,3000000001-3000000002")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Pair{A: Range{3000000000, 3000000005}, B: Range{3000000001, 3000000002}}
		if diff := cmp.Diff(want, p); diff != "" {
			t.Errorf("pair mismatch (-want +got):\n%s", diff)
		}
		if !p.FullyContained() {
			t.Error("expected the second range inside the first")
		}
	})

	t.Run("Section Out Of Range", func(t *testing.T) {
		_, err := ParsePair("1-99999999999999999999,3-7")
		if !errors.Is(err, aoc.ErrMalformedInput) {
			t.Fatalf("expected ErrMalformedInput, got %v", err)
		}
		if !strings.Contains(err.Error(), "out of range") {
			t.Errorf("expected an out of range message, got %v", err)
		}
	})

	for _, line := range []string{
		"",
		"2-8",
		"2-8;3-7",
		"2,8-3,7",
		"2-8,37",
		"a-8,3-7",
		"2-8,3-b",
		"2-8,3-7,1-1",
		"-1-8,3-7",
		" 2-8,3-7",
	} {
		t.Run("Malformed "+line, func(t *testing.T) {
			if _, err := ParsePair(line); !errors.Is(err, aoc.ErrMalformedInput) {
				t.Errorf("ParsePair(%q): expected ErrMalformedInput, got %v", line, err)
			}
		})
	}
}

func TestContainment(t *testing.T) {
	t.Run("Subset Counts For Part One", func(t *testing.T) {
		p, _ := ParsePair("2-8,3-7")
		if !p.B.IsSubset(p.A) {
			t.Error("expected 3-7 to be a subset of 2-8")
		}
		if !p.FullyContained() || !p.Overlapping() {
			t.Error("expected pair to count for both parts")
		}
	})

	t.Run("Single Point Overlap Counts Only For Part Two", func(t *testing.T) {
		p, _ := ParsePair("5-7,7-9")
		if p.FullyContained() {
			t.Error("expected no containment")
		}
		if !p.Overlapping() {
			t.Error("expected overlap at section 7")
		}
	})

	t.Run("Disjoint", func(t *testing.T) {
		p, _ := ParsePair("2-4,6-8")
		if p.FullyContained() || p.Overlapping() {
			t.Error("expected disjoint ranges")
		}
	})
}

// The six relative orderings of two closed intervals a and b.
func TestOverlapsOrderings(t *testing.T) {
	tests := []struct {
		name string
		a, b Range
		want bool
	}{
		{"a before b", Range{1, 2}, Range{4, 5}, false},
		{"a overlaps start of b", Range{1, 3}, Range{2, 5}, true},
		{"a inside b", Range{2, 3}, Range{1, 5}, true},
		{"b inside a", Range{1, 5}, Range{2, 3}, true},
		{"a overlaps end of b", Range{3, 6}, Range{1, 4}, true},
		{"a after b", Range{6, 7}, Range{1, 4}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %t, want %t", tt.a, tt.b, got, tt.want)
			}
			if got := overlapsMinimal(tt.a, tt.b); got != tt.want {
				t.Errorf("overlapsMinimal(%v, %v) = %t, want %t", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func validRanges(limit int) []Range {
	var rs []Range
	for start := 0; start <= limit; start++ {
		for end := start; end <= limit; end++ {
			rs = append(rs, Range{start, end})
		}
	}
	return rs
}

func TestOverlapsExhaustive(t *testing.T) {
	rs := validRanges(6)
	for _, a := range rs {
		for _, b := range rs {
			three := a.Overlaps(b)
			if minimal := overlapsMinimal(a, b); three != minimal {
				t.Errorf("%v vs %v: three-clause %t, minimal %t", a, b, three, minimal)
			}
			if three != b.Overlaps(a) {
				t.Errorf("%v vs %v: overlap not symmetric", a, b)
			}
			shared := false
			for s := a.Start; s <= a.End; s++ {
				if b.Contains(s) {
					shared = true
				}
			}
			if three != shared {
				t.Errorf("%v vs %v: Overlaps %t but shared section %t", a, b, three, shared)
			}
			if a.IsSubset(b) && !three {
				t.Errorf("%v is a subset of %v but does not overlap it", a, b)
			}
		}
	}
}

// Inverted ranges are accepted as written. These cases pin how the
// formulas treat them.
func TestInvertedRanges(t *testing.T) {
	p, err := ParsePair("7-3,4-6")
	if err != nil {
		t.Fatalf("inverted range should parse, got %v", err)
	}
	if !p.A.IsSubset(p.B) {
		t.Error("expected 7-3 to count as a subset of 4-6")
	}
	if p.Overlapping() {
		t.Error("expected 7-3 not to overlap 4-6")
	}
	if p.A.Contains(5) {
		t.Error("an inverted range contains no section")
	}
}

func TestCounts(t *testing.T) {
	pairs, err := ParsePairs(Sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := CountContained(pairs); got != 2 {
		t.Errorf("CountContained = %d, want 2", got)
	}
	if got := CountOverlapping(pairs); got != 4 {
		t.Errorf("CountOverlapping = %d, want 4", got)
	}
}

func TestParts(t *testing.T) {
	ctx := context.Background()

	one, err := Part1(ctx, Sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if one != 2 {
		t.Errorf("Part1 = %d, want 2", one)
	}

	two, err := Part2(ctx, Sample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if two != 4 {
		t.Errorf("Part2 = %d, want 4", two)
	}

	if two < one {
		t.Errorf("overlap count %d below containment count %d", two, one)
	}

	t.Run("Large Section IDs", func(t *testing.T) {
		got, err := Part1(ctx, "3000000000-3000000005,3000000001-3000000002\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 1 {
			t.Errorf("Part1 = %d, want 1", got)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		again, err := Part2(ctx, Sample)
		if err != nil || again != two {
			t.Errorf("rerun gave %d, %v", again, err)
		}
	})

	t.Run("Canceled Context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := Part1(canceled, Sample)
		var pipeErr *aoc.Error[cleanup]
		if !errors.As(err, &pipeErr) {
			t.Fatalf("expected *aoc.Error, got %v", err)
		}
		if !pipeErr.IsCanceled() {
			t.Error("expected canceled error")
		}
	})

	t.Run("Malformed Line Reports Path And Line", func(t *testing.T) {
		_, err := Part2(ctx, "2-4,6-8\n2-3;4-5\n")
		var pipeErr *aoc.Error[cleanup]
		if !errors.As(err, &pipeErr) {
			t.Fatalf("expected *aoc.Error, got %v", err)
		}
		if diff := cmp.Diff([]string{Part2Name, ParsePairsName}, pipeErr.Path); diff != "" {
			t.Errorf("path mismatch (-want +got):\n%s", diff)
		}
		var lineErr *aoc.LineError
		if !errors.As(err, &lineErr) || lineErr.Line != 2 {
			t.Errorf("expected line 2, got %v", err)
		}
	})
}
