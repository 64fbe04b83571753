package kmp

// automaton is the scanning half of a compiled pattern. The state k is the
// number of pattern symbols matched ending at the current text position.
type automaton[T comparable] struct {
	pattern []T
	links   []int
	border  int // longest border of the whole pattern
	trace   TraceFunc

	// fold, if set, maps each text symbol before comparison. The pattern
	// is stored folded.
	fold func(T) T

	// skip, if set, returns the first index >= from whose symbol equals
	// first, or len(text). Only consulted in state 0.
	skip func(text []T, from int, first T) int
}

// scan feeds text to the automaton starting in state k. Match starts are
// passed to emit as base plus their offset in text; they may precede text
// when state was carried over from an earlier call. scan returns the final
// state, and false if emit asked to stop.
//
// The pattern must not be empty.
func (a *automaton[T]) scan(text []T, k, base int, emit func(int) bool) (int, bool) {
	p, links, m, trace := a.pattern, a.links, len(a.pattern), a.trace

	for t := 0; t < len(text); {
		if k == 0 && a.skip != nil {
			if t = a.skip(text, t, p[0]); t == len(text) {
				break
			}
		}

		c := text[t]
		if a.fold != nil {
			c = a.fold(c)
		}
		eq := c == p[k]
		if trace != nil {
			trace(Event{Kind: EventCompare, State: k, Text: base + t, Equal: eq})
		}

		switch {
		case eq:
			k++
			t++
			if k == m {
				if trace != nil {
					trace(Event{Kind: EventMatch, Text: base + t - m})
					trace(Event{Kind: EventFallback, State: m, Text: base + t, Link: a.border})
				}
				if !emit(base + t - m) {
					return a.border, false
				}
				k = a.border
			}
		case k == 0:
			t++
		default:
			next := links[k]
			if trace != nil {
				trace(Event{Kind: EventFallback, State: k, Text: base + t, Link: next})
			}
			k = next
		}
	}
	return k, true
}
