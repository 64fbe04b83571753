package kmp

import (
	"context"
	"log/slog"
)

// EventKind identifies a traced step.
type EventKind uint8

const (
	// EventLink: the builder recorded Link as the table entry at index State.
	EventLink EventKind = iota + 1
	// EventCompare: text[Text] was compared with pattern[State]; Equal holds the outcome.
	EventCompare
	// EventFallback: at text position Text the automaton moved from state State to Link.
	EventFallback
	// EventMatch: a full match starts at text position Text.
	EventMatch
)

func (k EventKind) String() string {
	switch k {
	case EventLink:
		return "link"
	case EventCompare:
		return "compare"
	case EventFallback:
		return "fallback"
	case EventMatch:
		return "match"
	default:
		return "unknown"
	}
}

// Event describes a single step of table construction or scanning.
// Events from a Stream carry text positions relative to the current Write.
type Event struct {
	Kind  EventKind
	State int
	Text  int
	Link  int
	Equal bool
}

// TraceFunc receives events synchronously, on the searching goroutine.
type TraceFunc func(Event)

// SlogTracer returns a TraceFunc that writes every event to l as a debug
// record. A nil l uses slog.Default().
func SlogTracer(l *slog.Logger) TraceFunc {
	if l == nil {
		l = slog.Default()
	}
	ctx := context.Background()
	return func(e Event) {
		if !l.Enabled(ctx, slog.LevelDebug) {
			return
		}
		var attrs []slog.Attr
		switch e.Kind {
		case EventLink:
			attrs = []slog.Attr{slog.Int("index", e.State), slog.Int("link", e.Link)}
		case EventCompare:
			attrs = []slog.Attr{slog.Int("state", e.State), slog.Int("text", e.Text), slog.Bool("equal", e.Equal)}
		case EventFallback:
			attrs = []slog.Attr{slog.Int("state", e.State), slog.Int("text", e.Text), slog.Int("link", e.Link)}
		case EventMatch:
			attrs = []slog.Attr{slog.Int("pos", e.Text)}
		}
		l.LogAttrs(ctx, slog.LevelDebug, "kmp "+e.Kind.String(), attrs...)
	}
}
