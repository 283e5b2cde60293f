package threadscope

import (
	"log/slog"
	"time"
)

// DisposeEvent describes one disposal action. It is passed to the
// [WithOnDispose] hook exactly once per thread actually disposed of.
type DisposeEvent struct {
	// Thread identifies the disposed thread.
	Thread ThreadInfo

	// Detached is true when the thread was released rather than joined.
	Detached bool

	// Err is the joined work's outcome. Always nil for a detach, which
	// never observes the work's result.
	Err error

	// Duration is the time disposal spent blocked waiting for the work.
	// Effectively zero for a detach.
	Duration time.Duration
}

// Option configures a [Handle] or [Group] at construction.
type Option func(*config)

type config struct {
	onDispose func(DisposeEvent)
}

// WithOnDispose registers a hook invoked after each disposal action, in
// the goroutine that triggered it. The hook fires once per thread actually
// joined or detached; closing an empty handle does not fire it. The hook
// must not panic.
//
// WithOnDispose panics if fn is nil.
func WithOnDispose(fn func(DisposeEvent)) Option {
	if fn == nil {
		panic("threadscope: WithOnDispose requires non-nil callback")
	}
	return func(c *config) {
		c.onDispose = fn
	}
}

// StartOption configures a thread at [Start].
type StartOption func(*startConfig)

type startConfig struct {
	pinOSThread bool
	logger      *slog.Logger
}

// WithOSThread pins the work to a dedicated OS thread for its whole run.
// The kernel's id for that thread becomes available via
// [Thread.OSThreadID] once the work is scheduled. When the work returns,
// the OS thread is retired with the goroutine.
func WithOSThread() StartOption {
	return func(c *startConfig) {
		c.pinOSThread = true
	}
}

// WithLogger sets the logger used to record work that finished badly:
// a joined thread whose outcome is non-nil is logged at disposal, and a
// panic in the work is logged when captured. Without a logger such
// outcomes are swallowed silently, except where Close returns them.
//
// WithLogger panics if l is nil; pass no option for the silent default.
func WithLogger(l *slog.Logger) StartOption {
	if l == nil {
		panic("threadscope: WithLogger requires non-nil logger")
	}
	return func(c *startConfig) {
		c.logger = l
	}
}
