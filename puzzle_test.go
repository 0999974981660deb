package aoc

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func lineCount(_ context.Context, input string) (int, error) {
	return len(Lines(input)), nil
}

func TestParsePart(t *testing.T) {
	tests := []struct {
		in      string
		want    Part
		wantErr bool
	}{
		{"1", PartOne, false},
		{"part1", PartOne, false},
		{"2", PartTwo, false},
		{"part2", PartTwo, false},
		{"3", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePart(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePart(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePart(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if PartOne.String() != "part1" || PartTwo.String() != "part2" {
		t.Errorf("unexpected part names %q %q", PartOne, PartTwo)
	}
}

func TestPuzzleSolve(t *testing.T) {
	p := Puzzle{Day: 9, Title: "Lines", PartOne: lineCount}

	got, err := p.Solve(context.Background(), PartOne, "a\nb\nc\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("expected 3, got %d", got)
	}

	_, err = p.Solve(context.Background(), PartTwo, "a")
	if err == nil || !strings.Contains(err.Error(), "day 9 has no part2") {
		t.Errorf("expected missing part error, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	t.Run("All Is Ordered By Day", func(t *testing.T) {
		r, err := NewRegistry(
			Puzzle{Day: 4, PartOne: lineCount},
			Puzzle{Day: 1, PartOne: lineCount},
			Puzzle{Day: 3, PartOne: lineCount},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var days []int
		for _, p := range r.All() {
			days = append(days, p.Day)
		}
		if len(days) != 3 || days[0] != 1 || days[1] != 3 || days[2] != 4 {
			t.Errorf("expected days [1 3 4], got %v", days)
		}
	})

	t.Run("Duplicate Day", func(t *testing.T) {
		_, err := NewRegistry(Puzzle{Day: 2}, Puzzle{Day: 2})
		if !errors.Is(err, ErrDuplicateDay) {
			t.Errorf("expected ErrDuplicateDay, got %v", err)
		}
	})

	t.Run("Day Out Of Range", func(t *testing.T) {
		r, _ := NewRegistry()
		for _, day := range []int{0, 26, -1} {
			if err := r.Register(Puzzle{Day: day}); err == nil {
				t.Errorf("expected error registering day %d", day)
			}
		}
	})

	t.Run("Lookup", func(t *testing.T) {
		r, _ := NewRegistry(Puzzle{Day: 5, Title: "Supply Stacks"})
		p, err := r.Lookup(5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Title != "Supply Stacks" {
			t.Errorf("unexpected puzzle %+v", p)
		}
		if _, err := r.Lookup(6); !errors.Is(err, ErrUnknownDay) {
			t.Errorf("expected ErrUnknownDay, got %v", err)
		}
	})
}
