package types

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Set is a mutable hash set backed by map[T]struct{}.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding data.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts values in place.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes values in place. Missing values are ignored.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// Has reports whether val is in the set.
func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// DeleteFunc removes every element for which del returns true and reports how
// many were removed.
func (s Set[T]) DeleteFunc(del func(T) bool) int {
	removed := 0
	for val := range s {
		if del(val) {
			delete(s, val)
			removed++
		}
	}
	return removed
}

// All iterates the elements in no particular order.
func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s)
}

// Sorted returns the elements of an ordered set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(s.All())
}
