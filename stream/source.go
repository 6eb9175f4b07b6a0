package stream

// Source is a one-shot forward source of elements. Next returns the next
// element and true, or the zero value and false if the source is exhausted.
// Once a source has reported exhaustion, it is never called again by this
// package.
//
// A Cursor is a Source itself; wrapping a cursor re-uses its underlying
// list instead of creating a new one.
type Source[T any] interface {
	Next() (T, bool)
}

// --- Source adapters -------------------------------------------------------

type sliceSource[T any] struct {
	items []T
	pos   int
}

// FromSlice returns a source yielding the items of a slice in order.
// The slice is not copied.
func FromSlice[T any](items []T) Source[T] {
	return &sliceSource[T]{items: items}
}

func (s *sliceSource[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	s.pos++
	return s.items[s.pos-1], true
}

type funcSource[T any] struct {
	next func() (T, bool)
	done bool
}

// FromFunc returns a source calling next for every element. After next
// has returned false for the first time, it will not be called again.
func FromFunc[T any](next func() (T, bool)) Source[T] {
	return &funcSource[T]{next: next}
}

func (s *funcSource[T]) Next() (T, bool) {
	var zero T
	if s.done {
		return zero, false
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		return zero, false
	}
	return v, true
}

type chanSource[T any] struct {
	ch <-chan T
}

// FromChannel returns a source receiving from ch. The source is exhausted
// as soon as ch is closed. Reading from the source blocks as long as
// receiving from ch blocks.
func FromChannel[T any](ch <-chan T) Source[T] {
	return &chanSource[T]{ch: ch}
}

func (s *chanSource[T]) Next() (T, bool) {
	v, ok := <-s.ch
	return v, ok
}

type iterateSource[T any] struct {
	next    T
	f       func(T) T
	started bool
}

// Iterate returns an infinite source yielding seed, f(seed), f(f(seed)), …
func Iterate[T any](seed T, f func(T) T) Source[T] {
	return &iterateSource[T]{next: seed, f: f}
}

func (s *iterateSource[T]) Next() (T, bool) {
	if s.started {
		s.next = s.f(s.next)
	}
	s.started = true
	return s.next, true
}
