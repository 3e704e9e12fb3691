package disposable

import (
	"errors"
	"sync"
)

// Group releases a set of handles together, newest first.
// The zero value is ready to use.
type Group struct {
	mu      sync.Mutex
	handles []*Handle
}

// New constructs a handle and adds it to the group.
func (g *Group) New(opts ...Option) (*Handle, error) {
	h, err := New(opts...)
	if err != nil {
		return nil, err
	}
	g.Add(h)
	return h, nil
}

// Add transfers release responsibility for h to the group.
// Releasing h directly afterwards is still safe.
func (g *Group) Add(h *Handle) {
	if h == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handles = append(g.handles, h)
}

// Len returns the number of handles the group will release.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.handles)
}

// Release releases every handle in reverse order of addition and empties
// the group. All handles are attempted; errors are joined.
func (g *Group) Release() error {
	g.mu.Lock()
	handles := g.handles
	g.handles = nil
	g.mu.Unlock()

	var errs []error
	for i := len(handles) - 1; i >= 0; i-- {
		if err := handles[i].Release(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
