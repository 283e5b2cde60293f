// Package threadscope binds a disposal policy to the lifetime of a single
// thread of execution.
//
// Starting a goroutine in Go is trivial; reconciling it is not. A started
// thread that nobody waits on is a leak, and one torn down with its owner
// still holding obligations is a bug. threadscope makes the reconciliation
// automatic: a [Handle] owns exactly one started [Thread] and applies its
// policy — wait for completion ([Join]) or let it run out on its own
// ([Detach]) — exactly once when the handle is closed, no matter how
// control leaves the owning scope.
//
// # Starting and owning a thread
//
// [Start] launches a unit of work on its own goroutine and returns its
// handle. [Adopt] takes exclusive ownership and binds the policy:
//
//	t := threadscope.Start(ctx, "indexer", func(ctx context.Context) error {
//	    return rebuildIndex(ctx)
//	})
//	h := threadscope.Adopt[threadscope.Join](t)
//	defer h.Close() // blocks until the indexer finishes
//
// Under [Join], Close blocks until the work finishes and returns its error;
// every effect of the work is visible afterwards. Under [Detach], Close
// returns immediately and the thread finishes on its own with no further
// synchronization. The [JoinHandle] and [DetachHandle] aliases name the two
// instantiations.
//
// # Ownership
//
// A handle exclusively owns zero or one thread. Ownership moves, it never
// duplicates: [Handle.Release] empties a handle and returns its thread,
// [Handle.Transfer] moves a thread between handles, disposing of whatever
// the destination previously owned so no running thread is ever dropped
// without its policy being applied. Closing an empty (moved-from) handle
// is a no-op. However ownership is shuffled, at most one join or detach
// ever takes effect per thread.
//
// # Longer-lived storage
//
// [Group] holds any number of threads under one policy for callers that
// outlive a single scope, such as a set of long-running workers. Closing
// the group disposes of every member exactly once.
//
// # Identity
//
// Every thread carries a process-unique [ID], valid from start until the
// thread is gone. Querying an empty handle yields the [NoThread] sentinel.
// With [WithOSThread] the work is pinned to an OS thread and
// [Thread.OSThreadID] reports the kernel's id for it.
//
// # Panics and errors
//
// A panic in the work is captured with its stack as a [*PanicError] and
// surfaces as an ordinary error from a Join-policy Close. Disposal itself
// never fails and never propagates a failure out of Close; pass a logger
// via [WithLogger] to record work that finished badly.
package threadscope
