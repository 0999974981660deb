package day1

import (
	"cmp"
	"math"
	"slices"
	"strconv"

	"github.com/chris-olszewski/aoc2022"
)

// ParseCalories returns one total per elf. Elves are separated by empty
// lines; every other line must be a non-negative integer, and no elf's
// total may overflow an int.
func ParseCalories(input string) ([]int, error) {
	blocks := aoc.Blocks(input)
	totals := make([]int, 0, len(blocks))
	for _, block := range blocks {
		total := 0
		for i, line := range block.Lines {
			n, err := parseItem(line)
			if err != nil {
				return nil, &aoc.LineError{Line: block.Start + i, Text: line, Err: err}
			}
			if total, err = addCalories(total, n); err != nil {
				return nil, &aoc.LineError{Line: block.Start + i, Text: line, Err: err}
			}
		}
		totals = append(totals, total)
	}
	return totals, nil
}

func parseItem(line string) (int, error) {
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, aoc.Malformedf("calories %q is not an integer", line)
	}
	if n < 0 {
		return 0, aoc.Malformedf("calories %d is negative", n)
	}
	return n, nil
}

// addCalories adds two non-negative totals, failing instead of wrapping.
func addCalories(total, n int) (int, error) {
	if total > math.MaxInt-n {
		return 0, aoc.Malformedf("calorie total overflows")
	}
	return total + n, nil
}

// MaxCalories returns the largest elf total.
func MaxCalories(totals []int) (int, error) {
	if len(totals) == 0 {
		return 0, aoc.Violatedf("no elves in input")
	}
	return slices.Max(totals), nil
}

// TopKCalories returns the sum of the k largest totals. It sums every
// total when k exceeds the number of elves and returns 0 for k <= 0.
// A sum that does not fit in an int is malformed input.
func TopKCalories(totals []int, k int) (int, error) {
	if k <= 0 {
		return 0, nil
	}
	sorted := slices.Clone(totals)
	slices.SortFunc(sorted, func(a, b int) int { return cmp.Compare(b, a) })
	if k > len(sorted) {
		k = len(sorted)
	}
	sum := 0
	for _, total := range sorted[:k] {
		var err error
		if sum, err = addCalories(sum, total); err != nil {
			return 0, err
		}
	}
	return sum, nil
}
