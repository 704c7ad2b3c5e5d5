// Package gpu wraps GPU-resident resources in handles that release exactly once,
// and provides the OpenGL device used by the renderer.
package gpu

// Releaser is a GPU resource that must be freed explicitly on the GL thread.
type Releaser interface {
	Release()
}

// handle is the shared release bookkeeping of every resource type.
type handle struct {
	release  func()
	released bool
}

func (h *handle) Release() {
	if h.released {
		return
	}
	h.released = true
	if h.release != nil {
		h.release()
	}
}

// Released reports whether the resource has been freed.
func (h *handle) Released() bool {
	return h.released
}

// Scope tracks acquired resources and releases them in reverse order.
// Startup code tracks everything it allocates and releases the scope on failure;
// on success the scope is handed to the owner and released at shutdown.
type Scope struct {
	items []Releaser
}

// Track adds a resource to the scope.
func (s *Scope) Track(r Releaser) {
	if r == nil {
		return
	}
	s.items = append(s.items, r)
}

// Len returns the number of tracked resources.
func (s *Scope) Len() int {
	return len(s.items)
}

// Release frees all tracked resources, newest first. Safe to call more than once.
func (s *Scope) Release() {
	for i := len(s.items) - 1; i >= 0; i-- {
		s.items[i].Release()
	}
	s.items = nil
}
