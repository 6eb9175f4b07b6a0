package patmatch

import (
	"fmt"

	"github.com/npillmayer/patmatch/stream"
)

// --- Slices ----------------------------------------------------------------

type arrayPattern[E any] struct {
	subs []Pattern[E]
}

// Array matches slices of exactly len(subs) elements, where element i
// matches subs[i].
func Array[E any](subs ...Pattern[E]) Pattern[[]E] {
	return arrayPattern[E]{subs: subs}
}

func (p arrayPattern[E]) Apply(m *Manager, v []E) bool {
	if len(v) != len(p.subs) {
		return false
	}
	for i, sub := range p.subs {
		if !sub.Apply(m, v[i]) {
			return false
		}
	}
	return true
}

func (p arrayPattern[E]) String() string           { return render("Array", p.subs) }
func (p arrayPattern[E]) label() string            { return "Array" }
func (p arrayPattern[E]) children() []fmt.Stringer { return stringers(p.subs) }

type arrayRestPattern[E any] struct {
	these []Pattern[E]
	rest  Pattern[[]E]
}

// ArrayRest matches slices of at least len(these) elements. The leading
// elements must match these positionally, the remaining sub-slice must
// match rest.
func ArrayRest[E any](these []Pattern[E], rest Pattern[[]E]) Pattern[[]E] {
	return arrayRestPattern[E]{these: these, rest: rest}
}

func (p arrayRestPattern[E]) Apply(m *Manager, v []E) bool {
	if len(v) < len(p.these) {
		return false
	}
	for i, sub := range p.these {
		if !sub.Apply(m, v[i]) {
			return false
		}
	}
	return p.rest.Apply(m, v[len(p.these):])
}

func (p arrayRestPattern[E]) String() string {
	return render("ArrayRest", append(stringers(p.these), p.rest))
}

func (p arrayRestPattern[E]) label() string { return "ArrayRest" }

func (p arrayRestPattern[E]) children() []fmt.Stringer {
	return append(stringers(p.these), p.rest)
}

// --- Lazy sequences --------------------------------------------------------

type seqPattern[E any] struct {
	these []Pattern[E]
	rest  Pattern[stream.List[E]] // nil: sequence must end after these
}

// Seq matches lists of exactly len(subs) elements, where element i matches
// subs[i]. The list is forced only as far as necessary: matching stops at the
// first failing element, and at most len(subs)+1 nodes are forced.
func Seq[E any](subs ...Pattern[E]) Pattern[stream.List[E]] {
	return seqPattern[E]{these: subs}
}

// SeqRest matches lists of at least len(these) elements. The leading
// elements must match these positionally, and the remainder of the list must
// match rest. The remainder is handed to rest unforced, so the rest of an
// infinite list may be bound to a capture safely.
func SeqRest[E any](these []Pattern[E], rest Pattern[stream.List[E]]) Pattern[stream.List[E]] {
	assertThat(rest != nil, "sequence pattern requires a pattern for the rest")
	return seqPattern[E]{these: these, rest: rest}
}

func (p seqPattern[E]) Apply(m *Manager, l stream.List[E]) bool {
	for _, sub := range p.these {
		head, tail, ok := l.Uncons()
		if !ok || !sub.Apply(m, head) {
			return false
		}
		l = tail
	}
	if p.rest == nil {
		return l.IsEmpty()
	}
	return p.rest.Apply(m, l)
}

func (p seqPattern[E]) String() string {
	if p.rest == nil {
		return render("Seq", p.these)
	}
	return render("SeqRest", append(stringers(p.these), p.rest))
}

func (p seqPattern[E]) label() string {
	if p.rest == nil {
		return "Seq"
	}
	return "SeqRest"
}

func (p seqPattern[E]) children() []fmt.Stringer {
	if p.rest == nil {
		return stringers(p.these)
	}
	return append(stringers(p.these), p.rest)
}

type streamedPattern[E any] struct {
	cache *stream.Cache[E]
	sub   Pattern[stream.List[E]]
}

// Streamed matches one-shot sources by viewing them as a list, which sub has
// to match. Wrapping goes through cache, so a source is consumed only once,
// even if it is inspected by several alternatives, or by several patterns
// sharing the same cache. Sources of non-comparable type must be adopted
// (see stream.Adopt) and passed as cursors; cache.Wrap panics otherwise.
// Streamed panics if cache is nil.
func Streamed[E any](cache *stream.Cache[E], sub Pattern[stream.List[E]]) Pattern[stream.Source[E]] {
	assertThat(cache != nil, "streamed pattern requires a cache")
	return streamedPattern[E]{cache: cache, sub: sub}
}

func (p streamedPattern[E]) Apply(m *Manager, src stream.Source[E]) bool {
	if src == nil {
		return false
	}
	return p.sub.Apply(m, p.cache.Wrap(src))
}

func (p streamedPattern[E]) String() string           { return "Streamed(" + p.sub.String() + ")" }
func (p streamedPattern[E]) label() string            { return "Streamed" }
func (p streamedPattern[E]) children() []fmt.Stringer { return []fmt.Stringer{p.sub} }
