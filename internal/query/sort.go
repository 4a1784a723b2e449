package query

import (
	"cmp"
	"slices"
	"time"
)

// Sorted returns a copy of items stably sorted by compare.
func Sorted[E any](items []E, compare func(a, b E) int) []E {
	out := slices.Clone(items)
	slices.SortStableFunc(out, compare)
	return out
}

// Ascending orders entities lexicographically by a string field.
func Ascending[E any](field Field[E]) func(a, b E) int {
	return func(a, b E) int {
		return cmp.Compare(field(a), field(b))
	}
}

// Newest orders entities by a timestamp, most recent first. Zero times sort last.
func Newest[E any](at func(E) time.Time) func(a, b E) int {
	return func(a, b E) int {
		return at(b).Compare(at(a))
	}
}
