package playground

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
)

// Summarize prints the element count n followed by every element of seq.
func Summarize[T any](w io.Writer, seq iter.Seq[T], n int) error {
	if _, err := fmt.Fprintf(w, "There are %d elements\n", n); err != nil {
		return err
	}
	for v := range seq {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

// SummarizeSlice summarizes s in order.
func SummarizeSlice[T any](w io.Writer, s []T) error {
	return Summarize(w, slices.Values(s), len(s))
}

// SummarizeSet summarizes a set in sorted order, so output is stable.
func SummarizeSet[T cmp.Ordered](w io.Writer, set map[T]struct{}) error {
	keys := slices.Sorted(maps.Keys(set))
	return Summarize(w, slices.Values(keys), len(keys))
}

// NewSet builds a set from values, dropping duplicates.
func NewSet[T comparable](values ...T) map[T]struct{} {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
