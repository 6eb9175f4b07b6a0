package stream

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrEmptySequence is the panic value raised when clients access the head or
// tail of an empty list.
var ErrEmptySequence = errors.New("access to head or tail of empty sequence")

// node states
const (
	unresolved uint32 = iota
	resolvedEmpty
	resolvedNonEmpty
)

// chain is shared by all the unresolved nodes of one wrapped source. At any
// time at most one node of a chain is unresolved: the one at the end.
type chain[T any] struct {
	src       Source[T]
	exhausted atomic.Bool // set once the final, empty node has been resolved
}

// node is a cell of a lazy cons-list. A node is resolved at most once; after
// that it is immutable and may be read without locking.
type node[T any] struct {
	state atomic.Uint32
	mu    sync.Mutex
	chain *chain[T] // reset to nil as soon as the node is resolved
	head  T
	tail  *node[T]
}

func newNode[T any](ch *chain[T]) *node[T] {
	return &node[T]{chain: ch}
}

func emptyNode[T any]() *node[T] {
	n := &node[T]{}
	n.state.Store(resolvedEmpty)
	return n
}

// resolve forces n and returns its final state. The tail of a node is
// created unresolved, so resolving n never reads more than a single
// element from the source.
func (n *node[T]) resolve() uint32 {
	if s := n.state.Load(); s != unresolved {
		return s
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if s := n.state.Load(); s != unresolved {
		return s
	}
	v, ok := n.chain.src.Next()
	if !ok {
		n.chain.exhausted.Store(true)
		n.chain = nil
		n.state.Store(resolvedEmpty)
		return resolvedEmpty
	}
	n.head = v
	n.tail = newNode(n.chain)
	n.chain = nil
	n.state.Store(resolvedNonEmpty)
	return resolvedNonEmpty
}

// --- List ------------------------------------------------------------------

// List is an immutable, lazily evaluated view of a sequence. Lists are
// values and may be copied and shared freely, including between goroutines.
// The zero value is an empty list.
type List[T any] struct {
	n *node[T]
}

// Wrap creates a list over src. If src is a Cursor, the cursor's current
// position is returned instead of stacking a second view on top of it.
//
// Wrap assumes exclusive ownership of src: clients must not read from
// src after wrapping it. For sources which may already have been wrapped
// elsewhere, use a Cache.
func Wrap[T any](src Source[T]) List[T] {
	if cur, ok := src.(*Cursor[T]); ok {
		return cur.Rest()
	}
	if src == nil {
		return Empty[T]()
	}
	return List[T]{n: newNode(&chain[T]{src: src})}
}

// Of creates a list of the given items.
func Of[T any](items ...T) List[T] {
	return Wrap(FromSlice(items))
}

// Empty returns an empty list.
func Empty[T any]() List[T] {
	return List[T]{n: emptyNode[T]()}
}

// IsEmpty forces the first node of l and reports whether it is empty.
func (l List[T]) IsEmpty() bool {
	return l.n == nil || l.n.resolve() == resolvedEmpty
}

// Head returns the first element of l. It panics with ErrEmptySequence if
// l is empty.
func (l List[T]) Head() T {
	if l.IsEmpty() {
		panic(ErrEmptySequence)
	}
	return l.n.head
}

// Tail returns l without its first element. The tail is not forced.
// Tail panics with ErrEmptySequence if l is empty.
func (l List[T]) Tail() List[T] {
	if l.IsEmpty() {
		panic(ErrEmptySequence)
	}
	return List[T]{n: l.n.tail}
}

// Uncons splits l into head and tail. If l is empty, ok is false.
func (l List[T]) Uncons() (head T, tail List[T], ok bool) {
	if l.IsEmpty() {
		return head, l, false
	}
	return l.n.head, List[T]{n: l.n.tail}, true
}

// Resolved reports whether the first node of l has already been forced.
// It never forces anything itself.
func (l List[T]) Resolved() bool {
	return l.n == nil || l.n.state.Load() != unresolved
}

// Same reports whether l and other are the very same view, i.e. share
// their first node.
func (l List[T]) Same(other List[T]) bool {
	return l.n == other.n
}

// Cursor returns a new cursor positioned at the start of l.
func (l List[T]) Cursor() *Cursor[T] {
	if l.n == nil {
		return &Cursor[T]{at: emptyNode[T]()}
	}
	return &Cursor[T]{at: l.n}
}

// Take forces at most n elements of l and returns them.
func (l List[T]) Take(n int) []T {
	var items []T
	for i := 0; i < n; i++ {
		h, t, ok := l.Uncons()
		if !ok {
			break
		}
		items = append(items, h)
		l = t
	}
	return items
}

// Drop returns l without its first n elements, or an empty list if l
// has n elements or fewer. The returned list is not forced.
func (l List[T]) Drop(n int) List[T] {
	for ; n > 0; n-- {
		_, t, ok := l.Uncons()
		if !ok {
			return l
		}
		l = t
	}
	return l
}

// Slice forces all of l and returns its elements. Calling Slice on an
// infinite list will not terminate.
func (l List[T]) Slice() []T {
	var items []T
	for {
		h, t, ok := l.Uncons()
		if !ok {
			return items
		}
		items = append(items, h)
		l = t
	}
}

// String renders the already forced prefix of l. It never forces a node;
// an unforced remainder is shown as an ellipsis.
func (l List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	n := l.n
	for i := 0; n != nil; i++ {
		s := n.state.Load()
		if s == unresolved {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString("…")
			break
		}
		if s == resolvedEmpty {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.head))
		n = n.tail
	}
	b.WriteByte(']')
	return b.String()
}
