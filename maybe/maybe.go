/*
Package maybe implements an optional value.

Within this module a Maybe is returned where a value may legitimately be
absent without this being an error: reading a capture which may or may not
have been bound, or peeking at a cursor which may be at the end of its
sequence.

Clients may either unpack a Maybe with Get, or match it in a switch
statement:

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        …
    case m.Nothing():
        …
    }
*/
package maybe

// Maybe is either Just a value, or Nothing. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get unpacks m. ok is false for Nothing.
func (m Maybe[T]) Get() (value T, ok bool) {
	return m.value, m.tag
}

// IsNothing is true for Nothing.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// WithDefault returns the wrapped value, or def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the wrapped value, if any.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Match returns a Matcher to switch on m.
func (m Maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Maybe. Exactly one of
// Just and Nothing will return the matcher itself, the other one returns nil.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher is a pointer type, so switching on it works for any T,
// comparable or not.
type matcher[T any] struct {
	m Maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
