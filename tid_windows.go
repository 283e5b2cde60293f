//go:build windows

package threadscope

import "golang.org/x/sys/windows"

// osThreadID returns the id of the calling OS thread. The caller must be
// pinned via runtime.LockOSThread for the value to stay meaningful.
func osThreadID() int {
	return int(windows.GetCurrentThreadId())
}
