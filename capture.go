package patmatch

import (
	"github.com/npillmayer/patmatch/maybe"
)

// binding is what the manager records in its undo log.
type binding interface {
	Name() string
	clear()
}

// Capture is a named cell bound during a successful match. Captures are
// created once by the client and re-used for many match attempts. Within an
// attempt, a capture may be bound only once; the dispatcher clears it before
// the next case is tried.
//
// A capture is a pattern itself: it matches any value and binds it.
type Capture[T any] struct {
	name     string
	value    T
	assigned bool
}

var _ Pattern[int] = (*Capture[int])(nil)

// NewCapture creates an unbound capture. The name is used for diagnostics
// only; different captures may carry the same name.
func NewCapture[T any](name string) *Capture[T] {
	return &Capture[T]{name: name}
}

// Name returns the name of the capture.
func (c *Capture[T]) Name() string {
	return c.name
}

// Assign binds v and registers the capture with m. It panics if c is
// already bound.
func (c *Capture[T]) Assign(m *Manager, v T) {
	assertThat(!c.assigned, "capture %q is already bound", c.name)
	c.value = v
	c.assigned = true
	m.assigned(c)
}

// Get returns the bound value. It panics if c is not bound.
func (c *Capture[T]) Get() T {
	assertThat(c.assigned, "capture %q read before it has been bound", c.name)
	return c.value
}

// IsBound reports whether c is currently bound.
func (c *Capture[T]) IsBound() bool {
	return c.assigned
}

// Maybe returns the bound value, or Nothing if c is unbound.
func (c *Capture[T]) Maybe() maybe.Maybe[T] {
	if !c.assigned {
		return maybe.Nothing[T]()
	}
	return maybe.Just(c.value)
}

func (c *Capture[T]) clear() {
	var zero T
	c.value = zero
	c.assigned = false
}

// Apply binds v to c.
func (c *Capture[T]) Apply(m *Manager, v T) bool {
	c.Assign(m, v)
	return true
}

func (c *Capture[T]) String() string {
	return c.name
}
