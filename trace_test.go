package kmp

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectEvents(events *[]Event) Option {
	return WithTrace(func(e Event) {
		*events = append(*events, e)
	})
}

func TestTraceScan(t *testing.T) {
	var events []Event
	s := NewSearcher([]byte("aab"), collectEvents(&events))
	events = events[:0] // drop builder events

	require.Equal(t, []int{1}, s.FindAll([]byte("aaab")))
	assert.Equal(t, []Event{
		{Kind: EventCompare, State: 0, Text: 0, Equal: true},
		{Kind: EventCompare, State: 1, Text: 1, Equal: true},
		{Kind: EventCompare, State: 2, Text: 2, Equal: false},
		{Kind: EventFallback, State: 2, Text: 2, Link: 1},
		{Kind: EventCompare, State: 1, Text: 2, Equal: true},
		{Kind: EventCompare, State: 2, Text: 3, Equal: true},
		{Kind: EventMatch, Text: 1},
		{Kind: EventFallback, State: 3, Text: 4, Link: 0},
	}, events)
}

func TestTraceStreamOffsets(t *testing.T) {
	var events []Event
	var got []int64
	st, err := NewStream([]byte("abcd"), func(off int64) { got = append(got, off) }, collectEvents(&events))
	require.NoError(t, err)
	events = events[:0]

	st.Write([]byte("xxab"))
	st.Write([]byte("cd"))
	require.Equal(t, []int64{2}, got)

	var compared, matched []int
	for _, e := range events {
		switch e.Kind {
		case EventCompare:
			compared = append(compared, e.Text)
		case EventMatch:
			matched = append(matched, e.Text)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, compared)
	assert.Equal(t, []int{2}, matched)
}

func TestTraceBuild(t *testing.T) {
	var events []Event
	BuildTable([]byte("abab"), collectEvents(&events))
	assert.Equal(t, []Event{
		{Kind: EventLink, State: 0, Link: 0},
		{Kind: EventLink, State: 1, Link: 0},
		{Kind: EventLink, State: 2, Link: 0},
		{Kind: EventLink, State: 3, Link: 1},
	}, events)
}

func TestTraceDisablesByteSkip(t *testing.T) {
	var compares int
	s := NewByteSearcher([]byte("ab"), WithTrace(func(e Event) {
		if e.Kind == EventCompare {
			compares++
		}
	}))
	require.Equal(t, []int{4}, s.FindAll([]byte("xxxxab")))
	assert.Equal(t, 6, compares)
}

// Every comparison either advances the text cursor or lowers the state,
// and the state rises at most once per text symbol.
func TestLinearComparisons(t *testing.T) {
	tests := []struct {
		text, pattern string
	}{
		{strings.Repeat("a", 10000), "aaaab"},
		{strings.Repeat("a", 10000) + "b", "aaaaaaaaab"},
		{strings.Repeat("ab", 5000), "ababababac"},
		{strings.Repeat("abaabaaab", 1000), "abaabaaabaaab"},
		{strings.Repeat("aab", 3000), "aabaabaab"},
		{strings.Repeat("ABC", 1<<10) + "123" + strings.Repeat("ABC", 1<<10), strings.Repeat("ABC", 1<<6+1)},
	}
	for _, tt := range tests {
		var compares int
		s := NewSearcher([]byte(tt.pattern), WithTrace(func(e Event) {
			if e.Kind == EventCompare {
				compares++
			}
		}))
		s.FindAll([]byte(tt.text))
		assert.LessOrEqual(t, compares, 2*len(tt.text), "pattern %q", tt.pattern)
	}
}

func TestSlogTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := NewSearcher([]byte("ab"), WithLogger(logger))
	require.Equal(t, []int{1}, s.FindAll([]byte("xab")))

	out := buf.String()
	assert.Contains(t, out, `"msg":"kmp link"`)
	assert.Contains(t, out, `"msg":"kmp compare"`)
	assert.Contains(t, out, `"msg":"kmp match","pos":1`)
	assert.Contains(t, out, `"msg":"kmp fallback","state":2,"text":3,"link":0`)
}

func TestSlogTracerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	NewSearcher([]byte("ab"), WithLogger(logger)).FindAll([]byte("xab"))
	assert.Empty(t, buf.String())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "link", EventLink.String())
	assert.Equal(t, "compare", EventCompare.String())
	assert.Equal(t, "fallback", EventFallback.String())
	assert.Equal(t, "match", EventMatch.String())
	assert.Equal(t, "unknown", EventKind(0).String())
}
