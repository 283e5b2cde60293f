package threadscope

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
)

// ID is an opaque, comparable identity token for one thread. It is assigned
// at [Start] and stays valid for the lifetime of the process, including
// after the thread has been disposed of.
type ID uuid.UUID

// NoThread is the identity reported for a handle that owns no thread.
var NoThread ID

// String returns the canonical textual form of the id.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// ThreadInfo provides metadata about a thread. It is passed to the
// [WithOnDispose] hook.
type ThreadInfo struct {
	Name string
	ID   ID
}

// WorkFunc is the signature of the unit of work a thread runs. The context
// is the one passed to [Start]; cancellation is cooperative and entirely up
// to the caller, disposal never cancels it.
type WorkFunc func(ctx context.Context) error

// Thread is a handle to one unit of work running on its own goroutine.
// It is created by [Start] in the joinable state and is meant to be handed
// straight to [Adopt] or [Group.Add], which take ownership of it. The
// creator must not act on the thread again after transferring it.
//
// A Thread is joinable until exactly one join or detach has been applied
// to it; the guard is on the Thread itself, so duplicate disposal attempts
// through misused handles degrade to no-ops instead of racing.
type Thread struct {
	info   ThreadInfo
	done   chan struct{}
	err    error // written before done is closed, read only after
	tid    atomic.Int64
	logger *slog.Logger

	disposed atomic.Bool
}

// Start launches fn on a new goroutine and returns its handle, already in
// the joinable state. The caller owns the returned thread until it is
// transferred to a [Handle] or [Group].
//
// Start panics if fn is nil.
func Start(ctx context.Context, name string, fn WorkFunc, opts ...StartOption) *Thread {
	if fn == nil {
		panic("threadscope: Start requires non-nil fn")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := startConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Thread{
		info: ThreadInfo{
			Name: name,
			ID:   ID(uuid.New()),
		},
		done:   make(chan struct{}),
		logger: cfg.logger,
	}

	go func() {
		if cfg.pinOSThread {
			// Pin for the whole run. The goroutine exits without
			// unlocking, so the runtime retires the OS thread with it.
			runtime.LockOSThread()
			t.tid.Store(int64(osThreadID()))
		}

		defer close(t.done)
		defer func() {
			if r := recover(); r != nil {
				pe := newPanicError(r)
				t.err = pe
				if t.logger != nil {
					t.logger.Error("thread panicked",
						"thread", t.info.Name,
						"id", t.info.ID.String(),
						"panic", pe.Value,
					)
				}
			}
		}()

		t.err = fn(ctx)
	}()

	return t
}

// ID returns the thread's identity token.
func (t *Thread) ID() ID {
	return t.info.ID
}

// Name returns the name given to [Start].
func (t *Thread) Name() string {
	return t.info.Name
}

// Info returns the thread's metadata.
func (t *Thread) Info() ThreadInfo {
	return t.info
}

// Done returns a channel that is closed when the work has returned.
// Receiving from it observes completion but is not a disposal action;
// the thread stays joinable until its owner applies a policy.
func (t *Thread) Done() <-chan struct{} {
	return t.done
}

// Err returns the outcome of the work: nil on success, the returned error
// on failure, or a [*PanicError] if the work panicked. It is only
// meaningful once [Thread.Done] is closed; before that it returns nil.
func (t *Thread) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// OSThreadID reports the kernel's id for the OS thread the work is pinned
// to. It returns false unless the thread was started with [WithOSThread]
// on a platform that exposes thread ids, or if the work has not yet been
// scheduled.
func (t *Thread) OSThreadID() (int, bool) {
	tid := t.tid.Load()
	return int(tid), tid != 0
}

// joinable reports whether the thread still requires disposal.
func (t *Thread) joinable() bool {
	return !t.disposed.Load()
}

// join blocks until the work has returned, then reports its outcome.
// acted is false if the thread was already disposed of, in which case
// join does not block and the outcome is nil.
func (t *Thread) join() (err error, acted bool) {
	if !t.disposed.CompareAndSwap(false, true) {
		return nil, false
	}
	<-t.done
	return t.err, true
}

// detach releases the obligation to wait for the work. The goroutine keeps
// running and the runtime reclaims it when the work returns. acted is
// false if the thread was already disposed of.
func (t *Thread) detach() (acted bool) {
	return t.disposed.CompareAndSwap(false, true)
}
