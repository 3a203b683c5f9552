package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is a generic hash set implementation for comparable types.
//
// It is backed by map[T]struct{} and is mutable: Add and Delete modify the set
// in place. A Set is not safe for concurrent use.
type Set[T comparable] map[T]struct{}

// NewSet creates a new Set and optionally inserts the provided elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Delete removes one or more elements from the set.
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

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set. Cloning a nil set yields an empty set.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for val := range s {
		out[val] = struct{}{}
	}
	return out
}

// ToIter returns an iterator over all elements in the set.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns a slice containing all elements in the set.
//
// The order of elements is not guaranteed.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}
