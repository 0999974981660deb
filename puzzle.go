package aoc

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Part selects one of a day's two questions.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists both parts in order.
var Parts = []Part{PartOne, PartTwo}

func (p Part) String() string {
	switch p {
	case PartOne:
		return "part1"
	case PartTwo:
		return "part2"
	default:
		return fmt.Sprintf("part(%d)", int(p))
	}
}

// MarshalText renders the part as "part1" or "part2".
func (p Part) MarshalText() ([]byte, error) {
	if p != PartOne && p != PartTwo {
		return nil, fmt.Errorf("unknown part %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText accepts anything ParsePart does.
func (p *Part) UnmarshalText(text []byte) error {
	parsed, err := ParsePart(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePart accepts "1", "2", "part1" or "part2".
func ParsePart(s string) (Part, error) {
	switch s {
	case "1", "part1":
		return PartOne, nil
	case "2", "part2":
		return PartTwo, nil
	default:
		return 0, fmt.Errorf("unknown part %q", s)
	}
}

// Solver computes one part's answer from the raw puzzle input.
type Solver func(ctx context.Context, input string) (int, error)

// Puzzle is one day's catalogue entry.
type Puzzle struct {
	PartOne Solver
	PartTwo Solver
	Title   string
	Sample  string
	Day     int
}

// Solve runs the solver for part.
func (p Puzzle) Solve(ctx context.Context, part Part, input string) (int, error) {
	var solver Solver
	switch part {
	case PartOne:
		solver = p.PartOne
	case PartTwo:
		solver = p.PartTwo
	}
	if solver == nil {
		return 0, fmt.Errorf("day %d has no %s", p.Day, part)
	}
	return solver(ctx, input)
}

// Registry errors.
var (
	ErrDuplicateDay = errors.New("day already registered")
	ErrUnknownDay   = errors.New("day not registered")
)

// Registry is a catalogue of puzzles keyed by day. It is safe for
// concurrent use.
type Registry struct {
	puzzles map[int]Puzzle
	mu      sync.RWMutex
}

// NewRegistry returns a registry holding puzzles.
func NewRegistry(puzzles ...Puzzle) (*Registry, error) {
	r := &Registry{puzzles: make(map[int]Puzzle, len(puzzles))}
	for _, p := range puzzles {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds p. A day can only be registered once.
func (r *Registry) Register(p Puzzle) error {
	if p.Day < 1 || p.Day > 25 {
		return fmt.Errorf("day %d out of range 1-25", p.Day)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.puzzles[p.Day]; ok {
		return fmt.Errorf("%w: day %d", ErrDuplicateDay, p.Day)
	}
	r.puzzles[p.Day] = p
	return nil
}

// Lookup returns the puzzle for day.
func (r *Registry) Lookup(day int) (Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.puzzles[day]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: day %d", ErrUnknownDay, day)
	}
	return p, nil
}

// All returns every puzzle ordered by day.
func (r *Registry) All() []Puzzle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Puzzle) int { return a.Day - b.Day })
	return out
}
