//go:build linux

package threadscope

import "golang.org/x/sys/unix"

// osThreadID returns the kernel task id of the calling thread. The caller
// must be pinned via runtime.LockOSThread for the value to stay meaningful.
func osThreadID() int {
	return unix.Gettid()
}
