package day4

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chris-olszewski/aoc2022"
)

// Range is a closed interval of section IDs. Start <= End is not
// enforced: an inverted range parses and behaves per the formulas below.
type Range struct {
	Start int
	End   int
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Contains reports whether section lies in r.
func (r Range) Contains(section int) bool {
	return r.Start <= section && section <= r.End
}

// IsSubset reports whether r lies entirely inside other.
func (r Range) IsSubset(other Range) bool {
	return other.Start <= r.Start && r.End <= other.End
}

// Overlaps reports whether r and other share at least one section:
// r's start lies in other, r's end lies in other, or other lies entirely
// in r. The three cases cover every ordering without deciding which range
// starts first.
//
//	|--|        |---|        |--|       |--|
//	 |--|        |-|        |--|      |------|
func (r Range) Overlaps(other Range) bool {
	return other.Contains(r.Start) || other.Contains(r.End) || other.IsSubset(r)
}

// overlapsMinimal is the canonical two-comparison form of Overlaps.
func overlapsMinimal(a, b Range) bool {
	return a.Start <= b.End && b.Start <= a.End
}

// Pair is one line of the assignment list.
type Pair struct {
	A Range
	B Range
}

// FullyContained reports whether either range contains the other.
func (p Pair) FullyContained() bool {
	return p.A.IsSubset(p.B) || p.B.IsSubset(p.A)
}

// Overlapping reports whether the ranges share any section.
func (p Pair) Overlapping() bool {
	return p.A.Overlaps(p.B)
}

func parseSection(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if errors.Is(err, strconv.ErrRange) {
		return 0, aoc.Malformedf("section %q is out of range", s)
	}
	if err != nil {
		return 0, aoc.Malformedf("section %q is not a non-negative integer", s)
	}
	return int(n), nil
}

// ParseRange reads "start-end".
func ParseRange(s string) (Range, error) {
	startStr, endStr, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, aoc.Malformedf("'-' does not split %q into two parts", s)
	}
	start, err := parseSection(startStr)
	if err != nil {
		return Range{}, err
	}
	end, err := parseSection(endStr)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: start, End: end}, nil
}

// ParsePair reads "start-end,start-end".
func ParsePair(line string) (Pair, error) {
	first, second, ok := strings.Cut(line, ",")
	if !ok {
		return Pair{}, aoc.Malformedf("',' does not split %q into two parts", line)
	}
	a, err := ParseRange(first)
	if err != nil {
		return Pair{}, err
	}
	b, err := ParseRange(second)
	if err != nil {
		return Pair{}, err
	}
	return Pair{A: a, B: b}, nil
}

// ParsePairs parses one pair per line.
func ParsePairs(input string) ([]Pair, error) {
	return aoc.ParseLines(input, ParsePair)
}

// CountContained counts pairs where one range contains the other.
func CountContained(pairs []Pair) int {
	return aoc.CountFunc(pairs, Pair.FullyContained)
}

// CountOverlapping counts pairs whose ranges overlap at all.
func CountOverlapping(pairs []Pair) int {
	return aoc.CountFunc(pairs, Pair.Overlapping)
}
