//go:build !linux && !windows

package threadscope

// osThreadID reports 0 on platforms without a thread-id syscall binding;
// Thread.OSThreadID then reports unavailable.
func osThreadID() int {
	return 0
}
