package patmatch

import (
	"errors"
	"fmt"

	"github.com/npillmayer/patmatch/result"
)

// ErrReject is returned by case actions to reject a value after its pattern
// has matched. The dispatcher then continues with the next case, as if the
// pattern had not matched.
var ErrReject = errors.New("patmatch: case rejected")

// ErrNoMatch is the sentinel wrapped by NoMatchError.
var ErrNoMatch = errors.New("no case matched")

// NoMatchError is returned by Match if none of its cases matches a value.
type NoMatchError struct {
	Value any // the value nothing matched
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no case matched value %v", e.Value)
}

func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}

// --- Cases -----------------------------------------------------------------

// Case pairs a pattern with an action. The action is called if the pattern
// matches, and may read the captures the pattern has bound.
type Case[T, R any] struct {
	pattern Pattern[T]
	action  func() (R, error)
}

// When creates a case with an action which always succeeds.
func When[T, R any](p Pattern[T], action func() R) Case[T, R] {
	assertThat(p != nil && action != nil, "case requires a pattern and an action")
	return Case[T, R]{pattern: p, action: func() (R, error) {
		return action(), nil
	}}
}

// WhenGuarded creates a case whose action may reject the value by returning
// false, e.g. to express a guard on the captures.
func WhenGuarded[T, R any](p Pattern[T], action func() (R, bool)) Case[T, R] {
	assertThat(p != nil && action != nil, "case requires a pattern and an action")
	return Case[T, R]{pattern: p, action: func() (R, error) {
		r, ok := action()
		if !ok {
			return r, ErrReject
		}
		return r, nil
	}}
}

// WhenErr creates a case whose action may fail. If the action returns
// ErrReject, the dispatcher continues with the next case. Any other error
// is returned from Match as is.
func WhenErr[T, R any](p Pattern[T], action func() (R, error)) Case[T, R] {
	assertThat(p != nil && action != nil, "case requires a pattern and an action")
	return Case[T, R]{pattern: p, action: action}
}

// Pattern returns the pattern of c.
func (c Case[T, R]) Pattern() Pattern[T] {
	return c.pattern
}

func (c Case[T, R]) String() string {
	return c.pattern.String() + " ⇒ …"
}

// try runs c as one protected attempt. matched is true if the pattern
// matched and the action did not reject.
func (c Case[T, R]) try(m *Manager, v T) (r R, matched bool, err error) {
	m.Protected(func() bool {
		if !c.pattern.Apply(m, v) {
			return false
		}
		r, err = c.action()
		if errors.Is(err, ErrReject) {
			err = nil
			return false
		}
		matched = err == nil
		return true
	})
	return
}

// --- Dispatch --------------------------------------------------------------

// Match tries cases in order and returns the result of the first case whose
// pattern matches v and whose action does not reject. Captures are cleared
// after every case, matching or not.
//
// If no case matches, Match returns a *NoMatchError. Errors returned by an
// action are passed through unmodified.
func Match[T, R any](v T, cases ...Case[T, R]) (R, error) {
	m := NewManager()
	defer m.ClearAll() // clean up if user code panics
	for i, c := range cases {
		tracer().Debugf("match: trying case #%d", i)
		r, matched, err := c.try(m, v)
		m.ClearAll()
		if err != nil {
			return r, err
		}
		if matched {
			tracer().Debugf("match: case #%d matched", i)
			return r, nil
		}
	}
	tracer().Debugf("match: no case matched %v", v)
	var zero R
	return zero, &NoMatchError{Value: v}
}

// MustMatch is like Match, but panics if no case matches or if an action
// returns an error.
func MustMatch[T, R any](v T, cases ...Case[T, R]) R {
	r, err := Match(v, cases...)
	if err != nil {
		panic(err)
	}
	return r
}

// Switch is like Match, but packs the outcome into a Result.
func Switch[T, R any](v T, cases ...Case[T, R]) result.Result[R] {
	r, err := Match(v, cases...)
	return result.Of(r, err)
}

// Matches reports whether p matches v. Captures bound by p are cleared
// before Matches returns.
func Matches[T any](p Pattern[T], v T) bool {
	m := NewManager()
	defer m.ClearAll()
	return p.Apply(m, v)
}
