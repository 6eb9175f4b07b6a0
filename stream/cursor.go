package stream

import (
	"github.com/npillmayer/patmatch/maybe"
)

// Cursor is a mutable reading position within a List. Cursors are cheap to
// clone; a clone advances independently of the cursor it was cloned from,
// while both share the same underlying (memoized) nodes.
//
// The zero value is a cursor at the end of an empty sequence.
//
// A single cursor must not be advanced from more than one goroutine at a
// time. Different cursors on the same list may be used concurrently.
type Cursor[T any] struct {
	at *node[T]
}

var _ Source[int] = (*Cursor[int])(nil)

// Adopt creates a cursor for src, assuming exclusive ownership of src.
// If src is a cursor already, it is returned as is.
func Adopt[T any](src Source[T]) *Cursor[T] {
	if cur, ok := src.(*Cursor[T]); ok {
		return cur
	}
	return Wrap(src).Cursor()
}

// Shared creates a cursor for src, which may have been wrapped before or
// may be wrapped again later by somebody else. The wrapping is routed
// through cache, so all the cursors created for src read from one
// memoized list.
func Shared[T any](cache *Cache[T], src Source[T]) *Cursor[T] {
	assertThat(cache != nil, "shared cursor requires a cache")
	return cache.Wrap(src).Cursor()
}

// Next reads the current element and advances the cursor. If the cursor is
// at the end of the sequence, Next returns false.
func (c *Cursor[T]) Next() (T, bool) {
	if !c.HasNext() {
		var zero T
		return zero, false
	}
	v := c.at.head
	c.at = c.at.tail
	return v, true
}

// Advance reads the current element and advances the cursor. It panics
// with ErrEmptySequence if the cursor is at the end of the sequence.
func (c *Cursor[T]) Advance() T {
	v, ok := c.Next()
	if !ok {
		panic(ErrEmptySequence)
	}
	return v
}

// HasNext reports whether there is an element at the current position.
func (c *Cursor[T]) HasNext() bool {
	return c.at != nil && c.at.resolve() == resolvedNonEmpty
}

// Peek returns the current element without advancing.
func (c *Cursor[T]) Peek() maybe.Maybe[T] {
	if !c.HasNext() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(c.at.head)
}

// Clone returns an independent cursor at the same position.
func (c *Cursor[T]) Clone() *Cursor[T] {
	return &Cursor[T]{at: c.at}
}

// Rest returns the list starting at the current position, without
// forcing it.
func (c *Cursor[T]) Rest() List[T] {
	return List[T]{n: c.at}
}
