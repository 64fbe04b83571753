package kmp

import (
	"context"
	"errors"
	"fmt"
	"io"
)

const defaultBufSize = 4096

// Stream scans the bytes written to it for a pattern. Automaton state is
// kept across writes, so matches spanning write boundaries are reported.
// A Stream is not safe for concurrent use.
type Stream struct {
	s       *Searcher[byte]
	onMatch func(off int64)
	k       int
	off     int64
}

// NewStream returns a Stream that calls onMatch with the absolute offset of
// every match start. The pattern must not be empty.
func NewStream(pattern []byte, onMatch func(off int64), opts ...Option) (*Stream, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	return &Stream{s: NewByteSearcher(pattern, opts...), onMatch: onMatch}, nil
}

// Write scans p. It never fails. Trace events carry absolute offsets.
func (st *Stream) Write(p []byte) (int, error) {
	st.k, _ = st.s.a.scan(p, st.k, int(st.off), func(pos int) bool {
		if st.onMatch != nil {
			st.onMatch(int64(pos))
		}
		return true
	})
	st.off += int64(len(p))
	return len(p), nil
}

// Offset returns the number of bytes scanned since creation or Reset.
func (st *Stream) Offset() int64 {
	return st.off
}

// Reset discards any partial match and restarts offsets at zero.
func (st *Stream) Reset() {
	st.k = 0
	st.off = 0
}

// FindReader returns the offset of every occurrence of pattern in the
// bytes read from r. The context is checked between reads; on cancellation
// the matches found so far are returned with ctx.Err().
func FindReader(ctx context.Context, r io.Reader, pattern []byte, opts ...Option) ([]int64, error) {
	var out []int64
	st, err := NewStream(pattern, func(off int64) {
		out = append(out, off)
	}, opts...)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, defaultBufSize)
	for {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		n, err := r.Read(buf)
		if n > 0 {
			st.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("kmp: read: %w", err)
		}
	}
}
