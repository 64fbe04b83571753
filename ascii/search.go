// Package ascii searches byte strings with the KMP automaton, optionally
// folding ASCII letter case. Offsets are byte offsets.
package ascii

import (
	"github.com/mhr3/kmp"
	"github.com/mhr3/kmp/internal/bytealg"
)

// Searcher performs repeated substring searches.
// Construct once with NewSearcher, then call Index or IndexAll on multiple
// haystacks. The zero value is not usable.
type Searcher struct {
	raw string // original pattern
	s   *kmp.Searcher[byte]
}

// NewSearcher creates a Searcher for repeated substring searches.
// If caseSensitive is false, searches are case-insensitive (ASCII letters only).
// Haystacks are searched in place; case is folded byte by byte during
// comparison.
func NewSearcher(pattern string, caseSensitive bool, opts ...kmp.Option) Searcher {
	p := bytealg.FromString(pattern)
	s := Searcher{raw: pattern}
	if caseSensitive {
		s.s = kmp.NewByteSearcher(p, opts...)
	} else {
		s.s = kmp.NewSearcherFold(p, toLower, opts...)
	}
	return s
}

// Pattern returns the pattern the Searcher was created with.
func (s Searcher) Pattern() string {
	return s.raw
}

// Index finds the first occurrence of the pattern in haystack, or -1.
func (s Searcher) Index(haystack string) int {
	return s.s.Index(bytealg.FromString(haystack))
}

// IndexAll finds every occurrence of the pattern in haystack, overlapping
// ones included.
func (s Searcher) IndexAll(haystack string) []int {
	return s.s.FindAll(bytealg.FromString(haystack))
}

// Count returns the number of occurrences, overlapping ones included.
func (s Searcher) Count(haystack string) int {
	return s.s.Count(bytealg.FromString(haystack))
}

// Index finds the first case-sensitive match of needle in haystack.
func Index(haystack, needle string) int {
	return NewSearcher(needle, true).Index(haystack)
}

// IndexAll finds every case-sensitive match of needle in haystack.
func IndexAll(haystack, needle string) []int {
	return NewSearcher(needle, true).IndexAll(haystack)
}

// IndexFold finds the first case-insensitive match of needle in haystack.
func IndexFold(haystack, needle string) int {
	return NewSearcher(needle, false).Index(haystack)
}

// IndexAllFold finds every case-insensitive match of needle in haystack.
func IndexAllFold(haystack, needle string) []int {
	return NewSearcher(needle, false).IndexAll(haystack)
}
