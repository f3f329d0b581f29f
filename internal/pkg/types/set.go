package types

import (
	"maps"
	"slices"
)

// Set is a mutable hash set.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding data.
func NewSet[T comparable](data ...T) Set[T] {
	s := make(Set[T], len(data))
	s.Add(data...)
	return s
}

func (s Set[T]) Add(values ...T) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// ToSlice returns the members in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(maps.Keys(s))
}
