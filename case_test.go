package patmatch_test

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/npillmayer/patmatch"
	"github.com/npillmayer/patmatch/stream"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchFirstCaseWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch")
	defer teardown()
	//
	r, err := Match(123,
		When(Is(234), func() string { return "a" }),
		When(Is(123), func() string { return "b" }),
		When(Is(345), func() string { return "c" }),
	)
	if err != nil {
		t.Fatalf("expected 123 to match, got error %v", err)
	}
	if r != "b" {
		t.Errorf("expected match to return \"b\", returned %q", r)
	}
}

func TestMatchBackReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "patmatch")
	defer teardown()
	//
	x := NewCapture[string]("x")
	cases := []Case[[]string, int]{
		When(Array[string](x, IsCaptured(x)), func() int { return 1 }),
		When(Any[[]string](), func() int { return 2 }),
	}
	r, err := Match([]string{"1", "1"}, cases...)
	require.NoError(t, err)
	assert.Equal(t, 1, r)
	r, err = Match([]string{"1", "2"}, cases...)
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	assert.False(t, x.IsBound(), "captures must be cleared after Match returns")
}

func TestMatchNullThroughOr(t *testing.T) {
	x := NewCapture[any]("x")
	r, err := Match[any, any](nil,
		When(Or[any](NotNull[any](x), x), func() any { return x.Get() }),
	)
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestMatchSequenceRest(t *testing.T) {
	r := NewCapture[stream.List[string]]("r")
	p := SeqRest([]Pattern[string]{Is("this"), Is("is")}, Pattern[stream.List[string]](r))
	rest, err := Match(stream.Of("this", "is", "a", "test"),
		When(p, func() []string { return r.Get().Slice() }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "test"}, rest)
}

func TestMatchInfiniteSuffix(t *testing.T) {
	calls := 0
	n := -1
	naturals := stream.Wrap(stream.FromFunc(func() (int, bool) {
		calls++
		n++
		return n, true
	}))
	r := NewCapture[stream.List[int]]("r")
	p := SeqRest([]Pattern[int]{Is(0), Is(1)}, Pattern[stream.List[int]](r))
	suffix, err := Match(naturals, When(p, func() stream.List[int] { return r.Get() }))
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "binding the suffix must not force it")
	assert.False(t, suffix.Resolved())
	assert.Equal(t, []int{2, 3, 4}, suffix.Take(3))
}

func TestMatchNoCase(t *testing.T) {
	_, err := Match(7, When(Is(1), func() int { return 1 }))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoMatch))
	var nm *NoMatchError
	require.True(t, errors.As(err, &nm))
	assert.Equal(t, 7, nm.Value)
	assert.Panics(t, func() { MustMatch(7, When(Is(1), func() int { return 1 })) })
	_, err = Match[int, int](7)
	assert.True(t, errors.Is(err, ErrNoMatch), "an empty case list never matches")
}

func TestMatchGuardedActionRejects(t *testing.T) {
	x := NewCapture[int]("x")
	classify := func(n int) string {
		return MustMatch(n,
			WhenGuarded[int, string](x, func() (string, bool) { return "big", x.Get() > 10 }),
			When[int, string](x, func() string { return fmt.Sprintf("small %d", x.Get()) }),
		)
	}
	assert.Equal(t, "big", classify(42))
	assert.Equal(t, "small 3", classify(3), "capture must be re-bindable in the next case")
}

func TestMatchActionErrorsPassThrough(t *testing.T) {
	boom := errors.New("boom")
	tried := false
	_, err := Match(1,
		WhenErr(Any[int](), func() (int, error) { return 0, boom }),
		When(Any[int](), func() int { tried = true; return 2 }),
	)
	if err != boom {
		t.Errorf("expected action error to be returned unmodified, is %v", err)
	}
	if tried {
		t.Error("expected no further case to be tried after an action error")
	}
	r, err := Match(1,
		WhenErr(Any[int](), func() (int, error) { return 0, ErrReject }),
		When(Any[int](), func() int { return 2 }),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, r)
}

func TestMatchPanicClearsCaptures(t *testing.T) {
	x := NewCapture[int]("x")
	assert.PanicsWithValue(t, "user code", func() {
		Match[int, int](1, When[int, int](x, func() int { panic("user code") }))
	})
	assert.False(t, x.IsBound())
	r, err := Match[int, int](5, When[int, int](x, func() int { return x.Get() }))
	require.NoError(t, err)
	assert.Equal(t, 5, r)
}

func TestMatchCaptureHygiene(t *testing.T) {
	a := NewCapture[int]("a")
	b := NewCapture[int]("b")
	p := Array[int](a, b)
	for i := 0; i < 3; i++ {
		r, err := Match([]int{i, i * 10}, When(p, func() int {
			return a.Get() + b.Get()
		}))
		require.NoError(t, err)
		assert.Equal(t, i*11, r)
		assert.False(t, a.IsBound() || b.IsBound())
	}
}

func TestSwitch(t *testing.T) {
	res := Switch("x", When(Is("x"), func() int { return 1 }))
	if v, err := res.Get(); err != nil || v != 1 {
		t.Errorf("expected Switch to yield Ok(1), yields %v/%v", v, err)
	}
	res = Switch("y", When(Is("x"), func() int { return 1 }))
	assert.False(t, res.IsOk())
}

func TestStreamedSourceIsConsumedOnce(t *testing.T) {
	calls := 0
	items := []int{1, 2, 3}
	src := stream.FromFunc(func() (int, bool) {
		calls++
		if calls > len(items) {
			return 0, false
		}
		return items[calls-1], true
	})
	r := NewCapture[stream.List[int]]("r")
	cache := stream.NewCache[int]()
	p := Or(
		Streamed(cache, Seq(Is(1), Is(5))),
		Streamed(cache, SeqRest([]Pattern[int]{Is(1)}, Pattern[stream.List[int]](r))),
	)
	rest, err := Match(src, When(p, func() []int { return r.Get().Slice() }))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, rest)
	assert.Equal(t, 4, calls)
}

type funcSource func() (int, bool)

func (f funcSource) Next() (int, bool) { return f() }

func TestStreamedUncomparableSourceDeliversAllElements(t *testing.T) {
	items := []int{1, 2, 3}
	i := 0
	src := funcSource(func() (int, bool) {
		if i >= len(items) {
			return 0, false
		}
		i++
		return items[i-1], true
	})
	r := NewCapture[stream.List[int]]("r")
	cache := stream.NewCache[int]()
	p := Or(
		Streamed(cache, Seq(Is(1), Is(5))),
		Streamed(cache, SeqRest([]Pattern[int]{Is(1)}, Pattern[stream.List[int]](r))),
	)
	assert.Panics(t, func() { Matches[stream.Source[int]](p, src) },
		"uncomparable sources must not be re-wrapped silently")
	assert.Equal(t, 0, i, "nothing must have been read from the source")
	rest, err := Match[stream.Source[int]](stream.Adopt[int](src),
		When(p, func() []int { return r.Get().Slice() }))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, rest)
}

func TestStreamedRequiresCache(t *testing.T) {
	assert.Panics(t, func() { Streamed(nil, Seq(Is(1))) })
}

func TestSeqExactness(t *testing.T) {
	p := Seq(Is("a"), Is("b"))
	assert.True(t, Matches(p, stream.Of("a", "b")))
	assert.False(t, Matches(p, stream.Of("a", "b", "c")))
	assert.False(t, Matches(p, stream.Of("a")))
	assert.False(t, Matches(p, stream.Empty[string]()))
	assert.True(t, Matches(Seq[string](), stream.Empty[string]()))
}

func TestArrayExactness(t *testing.T) {
	p := Array(Is(1), Is(2))
	assert.True(t, Matches(p, []int{1, 2}))
	assert.False(t, Matches(p, []int{1, 2, 3}))
	assert.False(t, Matches(p, []int{}))
	assert.False(t, Matches(p, nil))
	assert.False(t, Matches(p, []int{2, 1}))
	rest := NewCapture[[]int]("rest")
	q := ArrayRest([]Pattern[int]{Is(1)}, Pattern[[]int](rest))
	r, err := Match([]int{1, 2, 3}, When(q, func() []int { return rest.Get() }))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, r)
	assert.False(t, Matches(q, []int{}))
}

func ExampleMatch() {
	head := NewCapture[string]("head")
	tail := NewCapture[[]string]("tail")
	describe := func(words []string) string {
		return MustMatch(words,
			When(Array[string](), func() string { return "nothing" }),
			When(ArrayRest([]Pattern[string]{head}, Pattern[[]string](tail)), func() string {
				return fmt.Sprintf("%s and %d more", head.Get(), len(tail.Get()))
			}),
		)
	}
	fmt.Println(describe(nil))
	fmt.Println(describe([]string{"this", "is", "a", "test"}))
	// Output:
	// nothing
	// this and 3 more
}
