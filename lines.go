package aoc

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Lines splits input into lines. A single trailing newline does not
// produce an empty final line, and a trailing "\r" is stripped from every
// line so CRLF files parse the same as LF files.
func Lines(input string) []string {
	if input == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(input, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// ParseLines parses every line of input with fn. It stops at the first
// failure and reports it as a *LineError.
func ParseLines[R any](input string, fn func(string) (R, error)) ([]R, error) {
	lines := Lines(input)
	records := make([]R, 0, len(lines))
	for i, line := range lines {
		r, err := fn(line)
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: line, Err: err}
		}
		records = append(records, r)
	}
	return records, nil
}

// Block is a maximal run of non-blank lines. Start is the 1-based line
// number of its first line.
type Block struct {
	Lines []string
	Start int
}

// Blocks groups input into runs of non-empty lines separated by empty
// lines. A line holding only spaces is not empty. Repeated empty lines
// never produce empty blocks, and the last run counts even without a
// trailing empty line.
func Blocks(input string) []Block {
	var blocks []Block
	var cur *Block
	for i, line := range Lines(input) {
		if line == "" {
			cur = nil
			continue
		}
		if cur == nil {
			blocks = append(blocks, Block{Start: i + 1})
			cur = &blocks[len(blocks)-1]
		}
		cur.Lines = append(cur.Lines, line)
	}
	return blocks
}

// Chunk splits xs into consecutive groups of n. It fails with
// ErrMalformedInput when len(xs) is not a multiple of n.
func Chunk[T any](xs []T, n int) ([][]T, error) {
	if n <= 0 {
		return nil, Malformedf("chunk size %d must be positive", n)
	}
	if len(xs)%n != 0 {
		return nil, Malformedf("%d records do not split into groups of %d", len(xs), n)
	}
	chunks := make([][]T, 0, len(xs)/n)
	for i := 0; i < len(xs); i += n {
		chunks = append(chunks, xs[i:i+n:i+n])
	}
	return chunks, nil
}

// Sum adds up xs.
func Sum[N constraints.Integer](xs []N) N {
	var total N
	for _, x := range xs {
		total += x
	}
	return total
}

// SumFunc adds up fn over xs.
func SumFunc[T any, N constraints.Integer](xs []T, fn func(T) N) N {
	var total N
	for _, x := range xs {
		total += fn(x)
	}
	return total
}

// CountFunc counts the elements of xs satisfying pred.
func CountFunc[T any](xs []T, pred func(T) bool) int {
	n := 0
	for _, x := range xs {
		if pred(x) {
			n++
		}
	}
	return n
}
