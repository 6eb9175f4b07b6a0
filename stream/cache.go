package stream

import (
	"reflect"
	"sync"
)

// Cache maps sources to the lists wrapping them. Wrapping a source through
// a cache is idempotent: as long as the cache holds an entry for a source,
// every call to Wrap returns the same list.
//
// A cache is owned by its client, who decides about its lifetime. Entries
// for sources which are still being read are never dropped, as re-wrapping
// such a source would silently skip the elements read so far. Entries for
// exhausted sources are dropped by Sweep, or implicitly if the cache has been
// configured with a capacity and grows beyond it. Re-wrapping a source whose
// entry has been dropped yields an empty list, so clients should sweep
// between match attempts, not during them.
//
// Sources used as cache keys must be of comparable type (pointer types
// usually are). Wrap panics for sources of non-comparable type; clients
// should adopt such a source first (see Adopt) and pass the cursor instead.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[Source[T]]entry[T]
	order   []Source[T] // insertion order
	props   props
}

type entry[T any] struct {
	head  *node[T]
	chain *chain[T]
}

// NewCache creates an empty cache.
func NewCache[T any](opts ...Option) *Cache[T] {
	c := &Cache[T]{}
	for _, option := range opts {
		c.props = option.config(c.props)
	}
	c.entries = make(map[Source[T]]entry[T], c.props.initial)
	return c
}

// Option is a type to help configuring caches at creation time.
type Option struct {
	config func(props) props
}

type props struct {
	capacity int // 0 = unbounded
	initial  int
}

// Capacity sets the number of entries beyond which a cache starts dropping
// the entries of exhausted sources. Entries of live sources are kept even
// if this means exceeding the capacity. n <= 0 means "unbounded".
func Capacity(n int) Option {
	conf := func(p props) props {
		if n < 0 {
			n = 0
		}
		p.capacity = n
		p.initial = n
		return p
	}
	return Option{config: conf}
}

// Wrap returns the list for src, creating it if src has not been wrapped by
// this cache before. Wrapping a cursor returns its current position.
// Wrap panics if src is not of comparable type.
func (c *Cache[T]) Wrap(src Source[T]) List[T] {
	if cur, ok := src.(*Cursor[T]); ok {
		return cur.Rest()
	}
	if src == nil {
		return Empty[T]()
	}
	assertThat(reflect.TypeOf(src).Comparable(),
		"source of type %T is not comparable and cannot be cached, adopt it and pass the cursor", src)
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[src]; ok {
		return List[T]{n: e.head}
	}
	ch := &chain[T]{src: src}
	e := entry[T]{head: newNode(ch), chain: ch}
	c.entries[src] = e
	c.order = append(c.order, src)
	if c.props.capacity > 0 && len(c.order) > c.props.capacity {
		if dropped := c.sweep(src); dropped == 0 {
			tracer().Debugf("stream cache exceeds capacity %d, all entries are live", c.props.capacity)
		}
	}
	return List[T]{n: e.head}
}

// Sweep drops the entries of all exhausted sources and returns their number.
func (c *Cache[T]) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sweep(nil)
}

// sweep drops exhausted entries, except the one for keep.
func (c *Cache[T]) sweep(keep Source[T]) int {
	live := c.order[:0]
	dropped := 0
	for _, src := range c.order {
		if src != keep && c.entries[src].chain.exhausted.Load() {
			delete(c.entries, src)
			dropped++
			continue
		}
		live = append(live, src)
	}
	for i := len(live); i < len(c.order); i++ {
		c.order[i] = nil
	}
	c.order = live
	if dropped > 0 {
		tracer().Debugf("stream cache dropped %d exhausted entries", dropped)
	}
	return dropped
}

// Len returns the number of entries.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Purge removes all entries. Like Sweep, it should only be called between
// match attempts.
func (c *Cache[T]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Source[T]]entry[T], c.props.initial)
	c.order = nil
}
