// Package utf8 searches UTF-8 strings one code point at a time.
//
// Each rune is a single symbol, so a pattern can never match starting in
// the middle of an encoded rune. Invalid bytes decode to utf8.RuneError,
// one per byte, and compare equal to each other.
package utf8

import "github.com/mhr3/kmp"

// RuneIndexAll returns the rune offset of every occurrence of substr in s,
// overlapping ones included.
func RuneIndexAll(s, substr string) []int {
	return kmp.FindAll([]rune(s), []rune(substr))
}

// IndexAll returns the byte offset of every occurrence of substr in s,
// overlapping ones included.
func IndexAll(s, substr string) []int {
	// starts[i] is the byte offset of rune i; the final entry is len(s).
	starts := make([]int, 0, len(s)+1)
	for i := range s {
		starts = append(starts, i)
	}
	starts = append(starts, len(s))

	matches := RuneIndexAll(s, substr)
	for i, r := range matches {
		matches[i] = starts[r]
	}
	return matches
}

// Index returns the byte offset of the first occurrence of substr in s,
// or -1.
func Index(s, substr string) int {
	pos := kmp.Index([]rune(s), []rune(substr))
	if pos < 0 {
		return -1
	}
	n := 0
	for i := range s {
		if n == pos {
			return i
		}
		n++
	}
	return len(s)
}
