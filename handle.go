package threadscope

import (
	"sync/atomic"
	"time"
)

// Handle is the sole owner of zero or one started [Thread]. When the handle
// is closed, its policy P is applied to the owned thread exactly once: a
// [Join] handle waits for the work to finish, a [Detach] handle releases it
// to finish on its own.
//
// A handle is move-only. Ownership leaves through [Handle.Release] or
// [Handle.Transfer] and never duplicates; after a move the source is empty
// and closing it is a no-op. Handles are created by [Adopt] and used
// through the returned pointer. Copying the pointed-to struct is flagged
// by go vet, and even a copied struct shares the one ownership slot, so
// the thread still cannot be disposed of twice.
//
// Close may be called from any goroutine and is idempotent. Release and
// Transfer assume the single-owner discipline and need external
// synchronization if the owner itself is shared.
type Handle[P Policy] struct {
	noCopy noCopy

	t   atomic.Pointer[Thread]
	cfg config
}

// JoinHandle owns a thread that is joined on Close.
type JoinHandle = Handle[Join]

// DetachHandle owns a thread that is detached on Close.
type DetachHandle = Handle[Detach]

// Adopt takes exclusive ownership of a started thread and binds policy P
// to its lifetime. The caller must give up its own claim on t and not act
// on it again.
//
// Adopting a nil thread is valid and yields an empty handle whose Close is
// a no-op, so callers can adopt unconditionally:
//
//	h := threadscope.Adopt[threadscope.Join](t)
//	defer h.Close()
func Adopt[P Policy](t *Thread, opts ...Option) *Handle[P] {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Handle[P]{cfg: cfg}
	if t != nil {
		h.t.Store(t)
	}
	return h
}

// Close applies the handle's policy to the owned thread and empties the
// handle. If the handle is empty, or the thread was already disposed of
// elsewhere, Close does nothing and returns nil.
//
// Under [Join], Close blocks until the work finishes and returns its
// outcome (a [*PanicError] if the work panicked); the work's effects are
// visible to the caller afterwards. Under [Detach], Close returns nil
// immediately. Close itself never panics and never propagates a disposal
// failure.
func (h *Handle[P]) Close() error {
	return disposeThread[P](h.t.Swap(nil), &h.cfg)
}

// Release moves the owned thread out of the handle without disposing of
// it, leaving the handle empty. It returns nil if the handle is empty.
// The caller becomes the owner and is responsible for the thread's
// disposal, typically by adopting it elsewhere.
func (h *Handle[P]) Release() *Thread {
	return h.t.Swap(nil)
}

// Transfer moves ownership from src into h, leaving src empty. If h
// currently owns a thread, that thread is disposed of per the policy
// first, before the adoption, so a running thread is never silently
// dropped; Transfer returns that disposal's outcome. Transferring from a
// nil or empty src adopts nothing but still disposes of h's current
// thread. Transferring a handle onto itself is a no-op.
func (h *Handle[P]) Transfer(src *Handle[P]) error {
	if src == h {
		return nil
	}

	var incoming *Thread
	if src != nil {
		incoming = src.t.Swap(nil)
	}

	err := disposeThread[P](h.t.Swap(nil), &h.cfg)

	if incoming != nil {
		h.t.Store(incoming)
	}
	return err
}

// ID returns the identity of the owned thread, or [NoThread] if the handle
// is empty. An empty handle is not an error: moved-from and closed handles
// report the sentinel rather than failing.
func (h *Handle[P]) ID() ID {
	if t := h.t.Load(); t != nil {
		return t.info.ID
	}
	return NoThread
}

// Joinable reports whether the handle owns a thread that still requires
// disposal.
func (h *Handle[P]) Joinable() bool {
	t := h.t.Load()
	return t != nil && t.joinable()
}

// disposeThread applies P to t, then runs the dispose hook if the policy
// actually acted. A nil t is nothing to dispose of.
func disposeThread[P Policy](t *Thread, cfg *config) error {
	if t == nil {
		return nil
	}

	var p P
	start := time.Now()
	err, acted := p.dispose(t)
	if !acted {
		return nil
	}

	if err != nil && t.logger != nil {
		t.logger.Error("thread finished with error",
			"thread", t.info.Name,
			"id", t.info.ID.String(),
			"error", err,
		)
	}

	if cfg.onDispose != nil {
		cfg.onDispose(DisposeEvent{
			Thread:   t.info,
			Detached: p.detached(),
			Err:      err,
			Duration: time.Since(start),
		})
	}

	return err
}

// noCopy triggers go vet's copylocks check when a Handle is copied by
// value. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
