package kmp

import "iter"

// FindAll returns the start of every occurrence of pattern in text,
// overlapping ones included, in increasing order.
func FindAll[T comparable](text, pattern []T) []int {
	return NewSearcher(pattern).FindAll(text)
}

// FindAllTable is FindAll with a table the caller built with BuildTable.
// It fails with ErrInvalidTable if the table length differs from the
// pattern length.
func FindAllTable[T comparable](text, pattern []T, table Table) ([]int, error) {
	s, err := NewSearcherTable(pattern, table)
	if err != nil {
		return nil, err
	}
	return s.FindAll(text), nil
}

// All returns a lazy sequence of the matches FindAll would return.
func All[T comparable](text, pattern []T) iter.Seq[int] {
	return NewSearcher(pattern).All(text)
}

// Index returns the first occurrence of pattern in text, or -1.
func Index[T comparable](text, pattern []T) int {
	return NewSearcher(pattern).Index(text)
}
