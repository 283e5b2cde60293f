package threadscope

import (
	"errors"
	"sync"
)

// Group is longer-lived storage for threads that outlive a single owning
// scope, such as a set of long-running workers. Every thread moved into
// the group is owned by it under one policy; [Group.Close] disposes of
// all of them exactly once.
//
// A Group is safe for concurrent use.
type Group[P Policy] struct {
	mu      sync.Mutex
	threads map[ID]*Thread
	closed  bool
	result  error
	cfg     config
}

// NewGroup creates an empty group bound to policy P.
func NewGroup[P Policy](opts ...Option) *Group[P] {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Group[P]{
		threads: make(map[ID]*Thread),
		cfg:     cfg,
	}
}

// Add moves a thread into the group, which becomes its owner. The caller
// must not act on the thread again. Adding nil is a no-op.
//
// Add panics if the group has been closed.
func (g *Group[P]) Add(t *Thread) {
	if t == nil {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		panic("threadscope: Add called after group close")
	}
	g.threads[t.info.ID] = t
}

// AddHandle moves the thread owned by h into the group, leaving h empty.
// Adding a nil or empty handle is a no-op.
//
// AddHandle panics if the group has been closed.
func (g *Group[P]) AddHandle(h *Handle[P]) {
	if h == nil {
		return
	}
	g.Add(h.Release())
}

// Len returns the number of threads the group currently owns.
func (g *Group[P]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.threads)
}

// IDs returns the identities of the threads the group currently owns,
// in no particular order.
func (g *Group[P]) IDs() []ID {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]ID, 0, len(g.threads))
	for id := range g.threads {
		ids = append(ids, id)
	}
	return ids
}

// Close disposes of every owned thread per the policy and permanently
// closes the group. Under [Join] it blocks until every member has
// finished and returns the members' outcomes joined via [errors.Join];
// under [Detach] it returns nil immediately after releasing them.
//
// Close is idempotent; subsequent calls return the same result.
func (g *Group[P]) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return g.result
	}
	g.closed = true

	var errs []error
	for id, t := range g.threads {
		if err := disposeThread[P](t, &g.cfg); err != nil {
			errs = append(errs, err)
		}
		delete(g.threads, id)
	}

	g.result = errors.Join(errs...)
	return g.result
}
