package threadscope

// Join is the blocking disposal policy: closing a Join-policy handle waits
// for the owned thread to finish and synchronizes with its effects.
type Join struct{}

// Detach is the non-blocking disposal policy: closing a Detach-policy
// handle releases the thread to finish on its own, with no further
// synchronization or observability through the handle.
type Detach struct{}

// Policy constrains the disposal behavior a [Handle] or [Group] binds at
// construction. Exactly two policies exist, [Join] and [Detach]; the
// binding is a compile-time choice, there is no runtime switch.
type Policy interface {
	Join | Detach

	// dispose applies the policy to t. acted is false when t was
	// already disposed of, in which case err is nil and nothing
	// happened.
	dispose(t *Thread) (err error, acted bool)

	// detached reports whether this is the non-blocking policy.
	detached() bool
}

func (Join) dispose(t *Thread) (error, bool) {
	return t.join()
}

func (Join) detached() bool { return false }

func (Detach) dispose(t *Thread) (error, bool) {
	return nil, t.detach()
}

func (Detach) detached() bool { return true }
