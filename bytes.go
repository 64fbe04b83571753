package kmp

import "github.com/mhr3/kmp/internal/bytealg"

// NewByteSearcher is NewSearcher for byte patterns. In state 0 the scan
// jumps directly to the next occurrence of the pattern's first byte, unless
// a tracer is configured, which sees every comparison.
func NewByteSearcher(pattern []byte, opts ...Option) *Searcher[byte] {
	s := NewSearcher(pattern, opts...)
	if s.a.trace == nil {
		s.a.skip = skipToByte
	}
	return s
}

func skipToByte(text []byte, from int, first byte) int {
	i := bytealg.IndexByte(text[from:], first)
	if i < 0 {
		return len(text)
	}
	return from + i
}

// IndexString returns the first occurrence of substr in s, or -1.
func IndexString(s, substr string) int {
	return NewByteSearcher(bytealg.FromString(substr)).Index(bytealg.FromString(s))
}

// IndexAllString returns the byte offset of every occurrence of substr in
// s, overlapping ones included.
func IndexAllString(s, substr string) []int {
	return NewByteSearcher(bytealg.FromString(substr)).FindAll(bytealg.FromString(s))
}
