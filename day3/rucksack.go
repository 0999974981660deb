package day3

import (
	"strings"

	"github.com/chris-olszewski/aoc2022"
)

// Item is one item type, written as a single ASCII letter.
type Item byte

// Priority maps a-z to 1-26 and A-Z to 27-52.
func (i Item) Priority() (int, error) {
	switch {
	case i >= 'a' && i <= 'z':
		return int(i-'a') + 1, nil
	case i >= 'A' && i <= 'Z':
		return int(i-'A') + 27, nil
	default:
		return 0, aoc.Malformedf("unexpected item %q", rune(i))
	}
}

func (i Item) String() string {
	return string(rune(i))
}

// Rucksack holds two equally sized compartments.
type Rucksack struct {
	Left  string
	Right string
}

// ParseRucksack splits line into its two compartments.
func ParseRucksack(line string) (Rucksack, error) {
	if len(line)%2 != 0 {
		return Rucksack{}, aoc.Malformedf("odd length %d", len(line))
	}
	half := len(line) / 2
	return Rucksack{Left: line[:half], Right: line[half:]}, nil
}

// ParseRucksacks parses one rucksack per line.
func ParseRucksacks(input string) ([]Rucksack, error) {
	return aoc.ParseLines(input, ParseRucksack)
}

// CommonItem returns the first item of the right compartment that also
// appears in the left one.
func (r Rucksack) CommonItem() (Item, error) {
	for i := 0; i < len(r.Right); i++ {
		if strings.IndexByte(r.Left, r.Right[i]) >= 0 {
			return Item(r.Right[i]), nil
		}
	}
	return 0, aoc.Violatedf("no item in both compartments of %q", r.Left+r.Right)
}

// Items returns every item in the rucksack, left compartment first.
func (r Rucksack) Items() *aoc.Set[Item] {
	s := aoc.NewSet[Item]()
	for _, b := range []byte(r.Left + r.Right) {
		s.Add(Item(b))
	}
	return s
}

// Badge returns the item carried by all three elves of a group. When more
// than one item qualifies, the earliest in a's contents wins.
func Badge(a, b, c Rucksack) (Item, error) {
	shared := a.Items().Intersect(b.Items()).Intersect(c.Items())
	badge, ok := shared.First()
	if !ok {
		return 0, aoc.Violatedf("no badge shared by group")
	}
	return badge, nil
}

// ErrorPriorities sums the priorities of each rucksack's common item.
func ErrorPriorities(rucksacks []Rucksack) (int, error) {
	total := 0
	for i, r := range rucksacks {
		item, err := r.CommonItem()
		if err != nil {
			return 0, &aoc.LineError{Line: i + 1, Text: r.Left + r.Right, Err: err}
		}
		p, err := item.Priority()
		if err != nil {
			return 0, &aoc.LineError{Line: i + 1, Text: r.Left + r.Right, Err: err}
		}
		total += p
	}
	return total, nil
}

// GroupSize is the number of elves sharing a badge.
const GroupSize = 3

// BadgePriorities splits rucksacks into groups of three and sums the
// priorities of their badges.
func BadgePriorities(rucksacks []Rucksack) (int, error) {
	groups, err := aoc.Chunk(rucksacks, GroupSize)
	if err != nil {
		return 0, err
	}
	total := 0
	for i, g := range groups {
		badge, err := Badge(g[0], g[1], g[2])
		if err != nil {
			return 0, &aoc.LineError{Line: i*GroupSize + 1, Text: g[0].Left + g[0].Right, Err: err}
		}
		p, err := badge.Priority()
		if err != nil {
			return 0, &aoc.LineError{Line: i*GroupSize + 1, Text: g[0].Left + g[0].Right, Err: err}
		}
		total += p
	}
	return total, nil
}
