package patmatch

import (
	"fmt"
	"reflect"
)

// Pattern is the capability to match a value of type T. Apply returns true if
// v matches, possibly after having bound captures through m, and false
// otherwise. A rejecting pattern may have bound captures; it is the caller's
// business to roll them back (see Manager.Protected).
//
// Patterns are immutable and hold no state of a match attempt, apart from
// the captures they refer to.
type Pattern[T any] interface {
	Apply(m *Manager, v T) bool
	String() string
}

// composite is implemented by patterns with sub-patterns, for Dump.
type composite interface {
	label() string
	children() []fmt.Stringer
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// --- Leaf patterns ---------------------------------------------------------

type anyPattern[T any] struct{}

// Any matches every value.
func Any[T any]() Pattern[T] {
	return anyPattern[T]{}
}

func (anyPattern[T]) Apply(*Manager, T) bool { return true }
func (anyPattern[T]) String() string         { return "_" }

type isPattern[T any] struct {
	expected func() T
	render   string
}

// Is matches values equal to expected. Values are compared by value
// (see Equal).
func Is[T any](expected T) Pattern[T] {
	return isPattern[T]{expected: Const(expected), render: fmt.Sprintf("%v", expected)}
}

// IsLazy matches values equal to the value produced by supplier. supplier is
// called once for every application of the pattern.
func IsLazy[T any](supplier func() T) Pattern[T] {
	return isPattern[T]{expected: supplier, render: "…"}
}

// IsCaptured matches values equal to the value bound to c. c must have been
// bound earlier in the same match attempt, otherwise IsCaptured panics.
func IsCaptured[T any](c *Capture[T]) Pattern[T] {
	return isPattern[T]{expected: c.Get, render: c.Name()}
}

func (p isPattern[T]) Apply(m *Manager, v T) bool {
	return Equal(any(p.expected()), any(v))
}

func (p isPattern[T]) String() string {
	return "Is(" + p.render + ")"
}

// Equal reports whether a and b are equal by value. All the flavours of nil
// (nil interface, nil pointer, nil slice, …) are equal to each other.
func Equal(a, b any) bool {
	if isNull(a) || isNull(b) {
		return isNull(a) && isNull(b)
	}
	return reflect.DeepEqual(a, b)
}

func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

type nullPattern[T any] struct{}

// Null matches nil values of any flavour.
func Null[T any]() Pattern[T] {
	return nullPattern[T]{}
}

func (nullPattern[T]) Apply(_ *Manager, v T) bool { return isNull(any(v)) }
func (nullPattern[T]) String() string             { return "Null" }

type predPattern[T any] struct {
	pred func(T) bool
}

// Pred matches values for which pred returns true.
func Pred[T any](pred func(T) bool) Pattern[T] {
	assertThat(pred != nil, "predicate pattern requires a predicate")
	return predPattern[T]{pred: pred}
}

func (p predPattern[T]) Apply(_ *Manager, v T) bool { return p.pred(v) }
func (p predPattern[T]) String() string             { return "Pred" }

// --- Narrowing -------------------------------------------------------------

type notNullPattern[T any] struct {
	sub Pattern[T]
}

// NotNull matches non-nil values which sub matches.
func NotNull[T any](sub Pattern[T]) Pattern[T] {
	return notNullPattern[T]{sub: sub}
}

func (p notNullPattern[T]) Apply(m *Manager, v T) bool {
	return !isNull(any(v)) && p.sub.Apply(m, v)
}

func (p notNullPattern[T]) String() string           { return "NotNull(" + p.sub.String() + ")" }
func (p notNullPattern[T]) label() string            { return "NotNull" }
func (p notNullPattern[T]) children() []fmt.Stringer { return []fmt.Stringer{p.sub} }

type instancePattern[T, S any] struct {
	sub    Pattern[S]
	target reflect.Type
}

// Instance matches values whose dynamic type is S (or implements S, if S is
// an interface type), and applies sub to the value narrowed to S.
// S acts as the type tag of the pattern.
//
// Instance panics if narrowing from T to S can never succeed, e.g. when
// T and S are different concrete types.
func Instance[T, S any](sub Pattern[S]) Pattern[T] {
	from := reflect.TypeOf((*T)(nil)).Elem()
	to := reflect.TypeOf((*S)(nil)).Elem()
	checkNarrowing(from, to)
	return instancePattern[T, S]{sub: sub, target: to}
}

func checkNarrowing(from, to reflect.Type) {
	switch {
	case from == to:
	case from.Kind() == reflect.Interface && to.Kind() == reflect.Interface:
	case from.Kind() == reflect.Interface:
		assertThat(to.Implements(from), "type %v does not implement %v, cannot narrow", to, from)
	case to.Kind() == reflect.Interface:
		assertThat(from.Implements(to), "type %v does not implement %v, cannot narrow", from, to)
	default:
		assertThat(false, "cannot narrow concrete type %v to %v", from, to)
	}
}

func (p instancePattern[T, S]) Apply(m *Manager, v T) bool {
	s, ok := any(v).(S)
	if !ok {
		return false
	}
	return p.sub.Apply(m, s)
}

func (p instancePattern[T, S]) String() string {
	return "Instance[" + p.target.String() + "](" + p.sub.String() + ")"
}

func (p instancePattern[T, S]) label() string            { return "Instance[" + p.target.String() + "]" }
func (p instancePattern[T, S]) children() []fmt.Stringer { return []fmt.Stringer{p.sub} }

type typeTagPattern[T any] struct {
	tag reflect.Type
	sub Pattern[any]
}

// InstanceOf is the run-time variant of Instance: tag is an explicit type
// descriptor, e.g. reflect.TypeOf(0). A value matches if its dynamic type is
// tag, or implements tag if tag is an interface type.
// InstanceOf panics if tag is nil.
func InstanceOf[T any](tag reflect.Type, sub Pattern[any]) Pattern[T] {
	assertThat(tag != nil, "type tag for instance pattern must not be nil")
	return typeTagPattern[T]{tag: tag, sub: sub}
}

func (p typeTagPattern[T]) Apply(m *Manager, v T) bool {
	x := any(v)
	if x == nil {
		return false
	}
	dyn := reflect.TypeOf(x)
	if dyn != p.tag && !(p.tag.Kind() == reflect.Interface && dyn.Implements(p.tag)) {
		return false
	}
	return p.sub.Apply(m, x)
}

func (p typeTagPattern[T]) String() string {
	return "Instance[" + p.tag.String() + "](" + p.sub.String() + ")"
}

func (p typeTagPattern[T]) label() string            { return "Instance[" + p.tag.String() + "]" }
func (p typeTagPattern[T]) children() []fmt.Stringer { return []fmt.Stringer{p.sub} }

// --- Views -----------------------------------------------------------------

type viewPattern[T, S any] struct {
	f   func(T) S
	sub Pattern[S]
}

// View matches v if sub matches f(v).
func View[T, S any](f func(T) S, sub Pattern[S]) Pattern[T] {
	assertThat(f != nil, "view pattern requires a view function")
	return viewPattern[T, S]{f: f, sub: sub}
}

func (p viewPattern[T, S]) Apply(m *Manager, v T) bool {
	return p.sub.Apply(m, p.f(v))
}

func (p viewPattern[T, S]) String() string           { return "View(" + p.sub.String() + ")" }
func (p viewPattern[T, S]) label() string            { return "View" }
func (p viewPattern[T, S]) children() []fmt.Stringer { return []fmt.Stringer{p.sub} }

type liftPattern[T any] struct {
	sub Pattern[any]
}

// Lift makes a pattern over arbitrary values usable for values of type T.
func Lift[T any](sub Pattern[any]) Pattern[T] {
	return liftPattern[T]{sub: sub}
}

func (p liftPattern[T]) Apply(m *Manager, v T) bool {
	return p.sub.Apply(m, any(v))
}

func (p liftPattern[T]) String() string { return p.sub.String() }

func (p liftPattern[T]) label() string            { return "Lift" }
func (p liftPattern[T]) children() []fmt.Stringer { return []fmt.Stringer{p.sub} }
