package kmp

import (
	"context"
	"fmt"
	"iter"
	"slices"
)

// Searcher is a compiled pattern for repeated searches.
// Construct once with NewSearcher, then search any number of texts.
// A Searcher is immutable and safe for concurrent use, unless a tracer
// that is not itself safe for concurrent use was configured.
type Searcher[T comparable] struct {
	a          automaton[T]
	table      Table
	checkEvery int
}

// NewSearcher copies pattern and builds its failure table.
func NewSearcher[T comparable](pattern []T, opts ...Option) *Searcher[T] {
	c := newConfig(opts)
	pattern = slices.Clone(pattern)
	return newSearcher(pattern, Table{links: buildLinks(pattern, c.trace)}, c)
}

// NewSearcherFold is NewSearcher for matching up to fold: pattern and text
// symbols are compared after mapping them through fold, so the text is
// never copied. Pattern returns the folded pattern.
func NewSearcherFold[T comparable](pattern []T, fold func(T) T, opts ...Option) *Searcher[T] {
	c := newConfig(opts)
	folded := make([]T, len(pattern))
	for i, v := range pattern {
		folded[i] = fold(v)
	}
	s := newSearcher(folded, Table{links: buildLinks(folded, c.trace)}, c)
	s.a.fold = fold
	return s
}

// NewSearcherTable compiles pattern with a table the caller built earlier.
// The table is checked against pattern in O(len(pattern)); a table built
// for any other pattern fails with ErrInvalidTable.
func NewSearcherTable[T comparable](pattern []T, table Table, opts ...Option) (*Searcher[T], error) {
	if table.Len() != len(pattern) {
		return nil, fmt.Errorf("%w: %d entries for a pattern of %d symbols",
			ErrInvalidTable, table.Len(), len(pattern))
	}
	if i := mismatchedLink(pattern, table.links); i >= 0 {
		return nil, fmt.Errorf("%w: entry %d is %d, pattern needs %d",
			ErrInvalidTable, i, table.links[i], expectedLink(pattern, table.links, i))
	}
	return newSearcher(slices.Clone(pattern), table, newConfig(opts)), nil
}

func newSearcher[T comparable](pattern []T, table Table, c config) *Searcher[T] {
	return &Searcher[T]{
		a: automaton[T]{
			pattern: pattern,
			links:   table.links,
			border:  fullBorder(pattern, table.links),
			trace:   c.trace,
		},
		table:      table,
		checkEvery: c.checkEvery,
	}
}

// Len returns the pattern length.
func (s *Searcher[T]) Len() int {
	return len(s.a.pattern)
}

// Pattern returns a copy of the pattern.
func (s *Searcher[T]) Pattern() []T {
	return slices.Clone(s.a.pattern)
}

// Table returns the failure table.
func (s *Searcher[T]) Table() Table {
	return s.table
}

// All returns the start positions of every occurrence of the pattern in
// text, overlapping ones included, in increasing order. The sequence is
// lazy and may be iterated any number of times.
//
// An empty pattern occurs at every position from 0 through len(text).
func (s *Searcher[T]) All(text []T) iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(s.a.pattern) == 0 {
			for i := 0; i <= len(text); i++ {
				if !yield(i) {
					return
				}
			}
			return
		}
		s.a.scan(text, 0, 0, yield)
	}
}

// FindAll collects All(text). It returns nil if there is no match.
func (s *Searcher[T]) FindAll(text []T) []int {
	var out []int
	for pos := range s.All(text) {
		out = append(out, pos)
	}
	return out
}

// Index returns the first match in text, or -1.
func (s *Searcher[T]) Index(text []T) int {
	for pos := range s.All(text) {
		return pos
	}
	return -1
}

// Count returns the number of matches in text, overlapping ones included.
func (s *Searcher[T]) Count(text []T) int {
	n := 0
	for range s.All(text) {
		n++
	}
	return n
}

// Contains reports whether the pattern occurs in text.
func (s *Searcher[T]) Contains(text []T) bool {
	return s.Index(text) >= 0
}

// FindAllContext is FindAll with cancellation, checked every
// WithCheckEvery symbols. On cancellation it returns the matches found so
// far along with ctx.Err().
func (s *Searcher[T]) FindAllContext(ctx context.Context, text []T) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.a.pattern) == 0 {
		return s.FindAll(text), nil
	}

	var out []int
	emit := func(pos int) bool {
		out = append(out, pos)
		return true
	}
	k := 0
	for base := 0; base < len(text); base += s.checkEvery {
		if base > 0 {
			if err := ctx.Err(); err != nil {
				return out, err
			}
		}
		end := min(base+s.checkEvery, len(text))
		k, _ = s.a.scan(text[base:end], k, base, emit)
	}
	return out, nil
}
