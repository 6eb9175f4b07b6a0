package patmatch

import (
	"fmt"
	"strings"
)

func render[P fmt.Stringer](name string, subs []P) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, sub := range subs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sub.String())
	}
	b.WriteByte(')')
	return b.String()
}

func stringers[P fmt.Stringer](subs []P) []fmt.Stringer {
	s := make([]fmt.Stringer, len(subs))
	for i, sub := range subs {
		s[i] = sub
	}
	return s
}

// --- And -------------------------------------------------------------------

type andPattern[T any] struct {
	subs []Pattern[T]
}

// And matches values which every one of subs matches, tried in order.
// The sub-patterns must not share captures: a capture bound by more than one
// of them will panic.
func And[T any](subs ...Pattern[T]) Pattern[T] {
	return andPattern[T]{subs: subs}
}

func (p andPattern[T]) Apply(m *Manager, v T) bool {
	for _, sub := range p.subs {
		if !sub.Apply(m, v) {
			return false
		}
	}
	return true
}

func (p andPattern[T]) String() string           { return render("And", p.subs) }
func (p andPattern[T]) label() string            { return "And" }
func (p andPattern[T]) children() []fmt.Stringer { return stringers(p.subs) }

// --- Or --------------------------------------------------------------------

type orPattern[T any] struct {
	subs []Pattern[T]
}

// Or matches values which at least one of subs matches. The alternatives are
// tried in order and the first matching one wins; captures bound by
// alternatives tried before are cleared. An empty Or never matches.
//
// The last alternative is applied without a protected block of its own: if
// it fails, its bindings are left to the enclosing attempt to clean up.
func Or[T any](subs ...Pattern[T]) Pattern[T] {
	return orPattern[T]{subs: subs}
}

func (p orPattern[T]) Apply(m *Manager, v T) bool {
	if len(p.subs) == 0 {
		return false
	}
	last := len(p.subs) - 1
	for _, sub := range p.subs[:last] {
		if m.Protected(func() bool { return sub.Apply(m, v) }) {
			return true
		}
	}
	return p.subs[last].Apply(m, v)
}

func (p orPattern[T]) String() string           { return render("Or", p.subs) }
func (p orPattern[T]) label() string            { return "Or" }
func (p orPattern[T]) children() []fmt.Stringer { return stringers(p.subs) }

// --- NoMatch ---------------------------------------------------------------

type noMatchPattern[T any] struct {
	sub Pattern[T]
}

// NoMatch matches values which sub does not match. NoMatch never binds
// anything: whatever sub binds while being tried is cleared again.
func NoMatch[T any](sub Pattern[T]) Pattern[T] {
	return noMatchPattern[T]{sub: sub}
}

func (p noMatchPattern[T]) Apply(m *Manager, v T) bool {
	return !m.probe(func() bool { return p.sub.Apply(m, v) })
}

func (p noMatchPattern[T]) String() string           { return "NoMatch(" + p.sub.String() + ")" }
func (p noMatchPattern[T]) label() string            { return "NoMatch" }
func (p noMatchPattern[T]) children() []fmt.Stringer { return []fmt.Stringer{p.sub} }

// --- Where -----------------------------------------------------------------

type wherePattern[T any] struct {
	sub  Pattern[T]
	cond func() bool
}

// Where matches values which sub matches, provided cond holds afterwards.
// cond will typically inspect captures bound by sub. If cond does not hold,
// the bindings of sub are cleared.
func Where[T any](sub Pattern[T], cond func() bool) Pattern[T] {
	assertThat(cond != nil, "where pattern requires a condition")
	return wherePattern[T]{sub: sub, cond: cond}
}

func (p wherePattern[T]) Apply(m *Manager, v T) bool {
	return Excursion(m,
		func() (bool, bool) { return true, p.sub.Apply(m, v) },
		func(bool) bool { return p.cond() },
		false)
}

func (p wherePattern[T]) String() string           { return "Where(" + p.sub.String() + ")" }
func (p wherePattern[T]) label() string            { return "Where" }
func (p wherePattern[T]) children() []fmt.Stringer { return []fmt.Stringer{p.sub} }
