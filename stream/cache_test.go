package stream

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestCacheWrapIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch.stream")
	defer teardown()
	//
	cache := NewCache[int]()
	src := FromSlice([]int{1, 2, 3})
	l1 := cache.Wrap(src)
	l2 := cache.Wrap(src)
	if !l1.Same(l2) {
		t.Error("expected re-wrapping a source to return the same list, didn't")
	}
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, []int{1, 2, 3}, l2.Slice())
	assert.Equal(t, []int{1, 2, 3}, l1.Slice())
}

func TestCacheKeepsLiveEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch.stream")
	defer teardown()
	//
	cache := NewCache[int](Capacity(1))
	a := FromSlice([]int{1, 2, 3})
	la := cache.Wrap(a)
	assert.Equal(t, []int{1, 2}, la.Take(2))
	cache.Wrap(FromSlice([]int{4}))
	assert.Equal(t, 2, cache.Len(), "entry of a partially read source must survive")
	again := cache.Wrap(a)
	assert.True(t, la.Same(again))
	assert.Equal(t, []int{1, 2, 3}, again.Slice())
}

func TestCacheDropsExhaustedEntries(t *testing.T) {
	cache := NewCache[int](Capacity(1))
	a, b, c := FromSlice([]int{1}), FromSlice([]int{2}), FromSlice([]int{3, 4})
	cache.Wrap(a).Slice()
	cache.Wrap(b).Slice()
	assert.Equal(t, 1, cache.Len(), "exhausted entry of a should have been dropped")
	lc := cache.Wrap(c)
	assert.Equal(t, 1, cache.Len(), "exhausted entry of b should have been dropped")
	lc.Take(1)
	cache.Wrap(FromSlice([]int{5}))
	assert.Equal(t, 2, cache.Len(), "live entry of c must be kept beyond capacity")
	assert.Equal(t, 0, cache.Sweep())
	assert.True(t, lc.Same(cache.Wrap(c)))
	cache.Purge()
	assert.Equal(t, 0, cache.Len())
}

func TestCacheUnboundedSweep(t *testing.T) {
	cache := NewCache[string]()
	live := FromSlice([]string{"x", "y"})
	done := FromSlice([]string{"z"})
	cache.Wrap(live).Take(1)
	cache.Wrap(done).Slice()
	if n := cache.Sweep(); n != 1 {
		t.Errorf("expected Sweep to drop 1 exhausted entry, dropped %d", n)
	}
	assert.Equal(t, []string{"x", "y"}, cache.Wrap(live).Slice())
}

type uncomparable struct {
	next func() (int, bool)
}

func (u uncomparable) Next() (int, bool) {
	return u.next()
}

func TestCacheUncomparableSource(t *testing.T) {
	cache := NewCache[int]()
	src := uncomparable{next: FromSlice([]int{7, 8}).Next}
	assert.Panics(t, func() { cache.Wrap(src) })
	assert.Equal(t, 0, cache.Len())
	// adopting the source yields a cursor, which wraps to a stable list
	c := Adopt[int](src)
	l1 := cache.Wrap(c)
	l2 := cache.Wrap(c)
	assert.True(t, l1.Same(l2))
	assert.Equal(t, []int{7, 8}, l2.Slice())
	assert.Equal(t, []int{7, 8}, l1.Slice())
}
