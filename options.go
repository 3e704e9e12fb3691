package disposable

import (
	"github.com/hupe1980/disposable/oshandle"
	"github.com/hupe1980/disposable/resource"
)

// DefaultSize is the buffer size used when WithSize is not given (1 MiB).
const DefaultSize = 1 << 20

type options struct {
	size       int
	acquirer   oshandle.Acquirer
	controller *resource.Controller
	logger     *Logger
	observer   Observer
	leakStacks bool
}

func defaultOptions() options {
	return options{
		size:     DefaultSize,
		acquirer: oshandle.System,
		logger:   NoopLogger(),
		observer: NoopObserver{},
	}
}

// Option configures handle construction.
type Option func(*options)

// WithSize sets the buffer size in bytes. A size of 0 holds only the OS handle.
func WithSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithAcquirer sets where OS handles come from.
//
// If nil is passed, oshandle.System is used.
func WithAcquirer(a oshandle.Acquirer) Option {
	return func(o *options) {
		if a == nil {
			a = oshandle.System
		}
		o.acquirer = a
	}
}

// WithController charges the handle's buffer and OS handle against c.
// Both budgets are returned by whichever release path runs.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithLogger sets the logger. Fallback release errors are reported here,
// since no caller is around to receive them.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithObserver sets the lifecycle event observer.
//
// If nil is passed, events are discarded.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs == nil {
			obs = NoopObserver{}
		}
		o.observer = obs
	}
}

// WithLeakStacks records the construction call stack so that a handle
// reclaimed by the fallback path can report where it was acquired.
func WithLeakStacks(enabled bool) Option {
	return func(o *options) {
		o.leakStacks = enabled
	}
}
