/*
Package result implements the outcome of a computation which may fail.

patmatch.Switch returns a Result instead of a (value, error) pair, for clients
who prefer to pass the outcome of a match along before inspecting it.
*/
package result

// Result is either Ok with a value, or Err with an error.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a value.
func Ok[T any](x T) Result[T] {
	return Result[T]{value: x}
}

// Err wraps an error. A nil error yields Ok with the zero value.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of converts a (value, error) pair.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

// Get unpacks r into the usual Go pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// IsOk is true if r does not carry an error.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// WithDefault returns the value of r, or def if r is an error.
func (r Result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Match returns a Matcher to switch on r.
func (r Result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r Result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
