package kmp

import "log/slog"

// defaultCheckEvery is the number of text symbols scanned between context
// checks in FindAllContext.
const defaultCheckEvery = 64 << 10

type config struct {
	trace      TraceFunc
	checkEvery int
}

// Option configures table construction and searching.
type Option func(*config)

func newConfig(opts []Option) config {
	c := config{checkEvery: defaultCheckEvery}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithTrace delivers builder and automaton events to fn.
// A nil fn disables tracing.
func WithTrace(fn TraceFunc) Option {
	return func(c *config) {
		c.trace = fn
	}
}

// WithLogger traces through l at debug level. See SlogTracer.
func WithLogger(l *slog.Logger) Option {
	return WithTrace(SlogTracer(l))
}

// WithCheckEvery sets how many text symbols FindAllContext scans between
// context checks.
func WithCheckEvery(n int) Option {
	if n <= 0 {
		panic("check interval must be positive")
	}
	return func(c *config) {
		c.checkEvery = n
	}
}
