// Package resource implements the Controller for global limits shared by handles.
//
// The Controller provides centralized management of three budgets:
//
//   - Memory: bytes of buffer held by live handles (non-blocking, fail-fast)
//   - OS handles: number of descriptors held at once (non-blocking, fail-fast)
//   - Acquisition rate: token bucket on how fast new handles may be opened
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and atomic counters
// for usage tracking. AcquireMemory returns immediately with
// ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	    MaxOpenHandles:   256,
//	})
//
//	if err := rc.AcquireMemory(1 << 20); err != nil {
//	    // ErrMemoryLimitExceeded - caller decides retry/backoff
//	}
//	defer rc.ReleaseMemory(1 << 20)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// A nil *Controller is valid and imposes no limits.
package resource
