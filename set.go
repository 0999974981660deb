package aoc

// Set is an insertion-ordered set. Items returns elements in the order
// they were first added, which keeps "first shared item" lookups
// deterministic across runs.
type Set[T comparable] struct {
	index map[T]struct{}
	items []T
}

// NewSet returns a set holding items, duplicates dropped.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts item and reports whether it was new.
func (s *Set[T]) Add(item T) bool {
	if _, ok := s.index[item]; ok {
		return false
	}
	if s.index == nil {
		s.index = make(map[T]struct{})
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

// Has reports whether item is in the set.
func (s *Set[T]) Has(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Items returns the elements in insertion order. The slice is a copy.
func (s *Set[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Intersect returns the elements of s that are also in other, in s's order.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	out := NewSet[T]()
	for _, item := range s.items {
		if other.Has(item) {
			out.Add(item)
		}
	}
	return out
}

// Union returns the elements of s followed by the new elements of other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := NewSet(s.items...)
	for _, item := range other.items {
		out.Add(item)
	}
	return out
}

// First returns the earliest element, or false if the set is empty.
func (s *Set[T]) First() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[0], true
}
