package resource

import (
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

var (
	// ErrMemoryLimitExceeded is returned when memory limit would be exceeded.
	ErrMemoryLimitExceeded = errors.New("resource: memory limit exceeded")
	// ErrHandleLimitExceeded is returned when the open handle limit would be exceeded.
	ErrHandleLimitExceeded = errors.New("resource: open handle limit exceeded")
	// ErrRateLimited is returned when acquisitions arrive faster than the configured rate.
	ErrRateLimited = errors.New("resource: acquisition rate exceeded")
)

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for buffer memory held by live handles.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// MaxOpenHandles is the maximum number of OS handles held at once.
	// If 0, no hard limit is enforced (only tracking).
	MaxOpenHandles int64

	// AcquireRatePerSec is the maximum sustained rate of handle acquisitions.
	// If 0, unlimited.
	AcquireRatePerSec float64

	// AcquireBurst is the token bucket size for AcquireRatePerSec.
	// If 0, defaults to 1.
	AcquireBurst int
}

// Controller governs memory and OS handle budgets shared by many handles.
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// OS handles
	handleSem   *semaphore.Weighted // nil if unlimited
	handlesOpen atomic.Int64

	// Acquisition rate
	limiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.AcquireBurst <= 0 {
		cfg.AcquireBurst = 1
	}

	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.MaxOpenHandles > 0 {
		c.handleSem = semaphore.NewWeighted(cfg.MaxOpenHandles)
	}

	if cfg.AcquireRatePerSec > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.AcquireRatePerSec), cfg.AcquireBurst)
	}

	return c
}

// AcquireMemory attempts to reserve memory.
// Returns ErrMemoryLimitExceeded if limit would be exceeded.
// Non-blocking - callers control retry/backoff policy.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return ErrMemoryLimitExceeded
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil {
		return
	}
	if bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// AcquireHandle reserves one OS handle slot without blocking.
// Returns ErrHandleLimitExceeded if all slots are taken.
func (c *Controller) AcquireHandle() error {
	if c == nil {
		return nil
	}

	if c.handleSem != nil {
		if !c.handleSem.TryAcquire(1) {
			return ErrHandleLimitExceeded
		}
	}

	c.handlesOpen.Add(1)
	return nil
}

// ReleaseHandle returns an OS handle slot.
func (c *Controller) ReleaseHandle() {
	if c == nil {
		return
	}

	if c.handleSem != nil {
		c.handleSem.Release(1)
	}
	c.handlesOpen.Add(-1)
}

// OpenHandles returns the number of OS handle slots currently held.
func (c *Controller) OpenHandles() int64 {
	if c == nil {
		return 0
	}
	return c.handlesOpen.Load()
}

// AllowAcquire consumes one acquisition token.
// Returns ErrRateLimited if no token is available right now.
func (c *Controller) AllowAcquire() error {
	if c == nil || c.limiter == nil {
		return nil
	}
	if !c.limiter.Allow() {
		return ErrRateLimited
	}
	return nil
}
