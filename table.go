// Package kmp implements Knuth-Morris-Pratt exact substring search over
// sequences of comparable symbols.
//
// A pattern is compiled once into a failure table (BuildTable) and then
// scanned against any number of texts in time linear in the text length.
// All matches are reported, overlapping ones included.
package kmp

import (
	"fmt"
	"slices"
)

// Table is the failure table of a pattern. At(i) is the length of the
// longest proper prefix of pattern[:i] that is also a suffix of it.
// A Table is immutable once built.
type Table struct {
	links []int
}

// BuildTable computes the failure table of pattern in O(len(pattern)).
func BuildTable[T comparable](pattern []T, opts ...Option) Table {
	c := newConfig(opts)
	return Table{links: buildLinks(pattern, c.trace)}
}

// NewTable wraps precomputed entries, e.g. a table persisted by the caller.
// Entry 0 must be 0 and every later entry i must lie in [0, i).
func NewTable(entries []int) (Table, error) {
	for i, e := range entries {
		if e < 0 || (i == 0 && e != 0) || (i > 0 && e >= i) {
			return Table{}, fmt.Errorf("%w: entry %d is %d", ErrInvalidTable, i, e)
		}
	}
	return Table{links: slices.Clone(entries)}, nil
}

// Len returns the number of entries, equal to the pattern length.
func (t Table) Len() int {
	return len(t.links)
}

// At returns entry i.
func (t Table) At(i int) int {
	return t.links[i]
}

// Entries returns a copy of the table entries.
func (t Table) Entries() []int {
	return slices.Clone(t.links)
}

func buildLinks[T comparable](pattern []T, trace TraceFunc) []int {
	links := make([]int, len(pattern))
	for i := range links {
		if i >= 2 {
			links[i] = extendBorder(pattern, links, i)
		}
		if trace != nil {
			trace(Event{Kind: EventLink, State: i, Link: links[i]})
		}
	}
	return links
}

// expectedLink returns the entry i that buildLinks would compute, given
// correct entries below i.
func expectedLink[T comparable](pattern []T, links []int, i int) int {
	if i < 2 {
		return 0
	}
	return extendBorder(pattern, links, i)
}

// mismatchedLink returns the first index whose entry differs from the one
// buildLinks computes for pattern, or -1. Entries below the mismatch are
// correct, so each step only reads verified entries.
func mismatchedLink[T comparable](pattern []T, links []int) int {
	for i := range links {
		if links[i] != expectedLink(pattern, links, i) {
			return i
		}
	}
	return -1
}

// extendBorder returns the longest border of pattern[:i] from the entries
// of links below i. Requires 2 <= i <= len(pattern).
func extendBorder[T comparable](pattern []T, links []int, i int) int {
	b := links[i-1]
	for b > 0 && pattern[b] != pattern[i-1] {
		b = links[b]
	}
	// the loop also exits at b == 0 on a mismatch
	if pattern[b] == pattern[i-1] {
		return b + 1
	}
	return 0
}

// fullBorder returns the longest border of the whole pattern, the state
// the automaton resumes from after a complete match.
func fullBorder[T comparable](pattern []T, links []int) int {
	if len(pattern) < 2 {
		return 0
	}
	return extendBorder(pattern, links, len(pattern))
}
