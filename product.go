package patmatch

import (
	"fmt"
)

// --- Products --------------------------------------------------------------

// Product is a value of fixed arity whose components are accessible by
// index. It stands in for tuples, which Go does not have.
type Product interface {
	Arity() int
	At(i int) any
}

// Values is a Product made of arbitrary values.
type Values []any

// Tup creates a Values product.
func Tup(xs ...any) Values {
	return Values(xs)
}

func (t Values) Arity() int     { return len(t) }
func (t Values) At(i int) any   { return t[i] }
func (t Values) String() string { return fmt.Sprintf("%v", []any(t)) }

// Pair is a product of two values of possibly different type.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

func (p Pair[A, B]) Arity() int {
	return 2
}

func (p Pair[A, B]) At(i int) any {
	switch i {
	case 0:
		return p.Left
	case 1:
		return p.Right
	}
	panic(fmt.Sprintf("patmatch: index %d out of range for pair", i))
}

// Decompose returns the components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

var _ Product = Pair[int, int]{1, 2}
var _ Product = P(1, 2)

type pairPattern[A, B any] struct {
	left  Pattern[A]
	right Pattern[B]
}

// PairOf matches pairs whose left component matches left and whose right
// component matches right.
func PairOf[A, B any](left Pattern[A], right Pattern[B]) Pattern[Pair[A, B]] {
	return pairPattern[A, B]{left: left, right: right}
}

func (p pairPattern[A, B]) Apply(m *Manager, v Pair[A, B]) bool {
	return p.left.Apply(m, v.Left) && p.right.Apply(m, v.Right)
}

func (p pairPattern[A, B]) String() string {
	return "Pair(" + p.left.String() + ", " + p.right.String() + ")"
}

func (p pairPattern[A, B]) label() string            { return "Pair" }
func (p pairPattern[A, B]) children() []fmt.Stringer { return []fmt.Stringer{p.left, p.right} }

type tuplePattern struct {
	subs []Pattern[any]
}

// Tuple matches products of arity len(subs), where component i matches
// subs[i].
func Tuple(subs ...Pattern[any]) Pattern[Product] {
	return tuplePattern{subs: subs}
}

func (p tuplePattern) Apply(m *Manager, v Product) bool {
	if v == nil || v.Arity() != len(p.subs) {
		return false
	}
	for i, sub := range p.subs {
		if !sub.Apply(m, v.At(i)) {
			return false
		}
	}
	return true
}

func (p tuplePattern) String() string           { return render("Tuple", p.subs) }
func (p tuplePattern) label() string            { return "Tuple" }
func (p tuplePattern) children() []fmt.Stringer { return stringers(p.subs) }
