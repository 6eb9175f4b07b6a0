/*
Package patmatch implements structural pattern matching with captures and
backtracking.

Clients build a tree of patterns, try it against a value, and on success
read the captures bound during the match:

    x := patmatch.NewCapture[string]("x")
    r, err := patmatch.Match([]string{"1", "1"},
        patmatch.When(patmatch.Array[string](x, patmatch.IsCaptured(x)), func() int { return 1 }),
        patmatch.When(patmatch.Any[[]string](), func() int { return 2 }),
    )
    // r = 1

Match tries its cases top down and returns the result of the first case whose
pattern matches and whose action does not reject. If no case matches, Match
returns a *NoMatchError carrying the value.

Captures

A Capture is a named cell which is bound at most once per match attempt.
Binding a capture twice, or reading an unbound capture, is a programming
error and panics. Captures are cleared by the dispatcher after every case,
so a capture may be used in more than one case, and in more than one call
to Match. All bindings are recorded by a Manager, which offers transactional
sub-attempts: if a protected block fails, every capture bound within it is
cleared again. Or, NoMatch and Where build on this.

Sequences

Array and ArrayRest match slices. Seq and SeqRest match a stream.List, which
is a lazy view of a possibly infinite one-shot source. Binding the rest of a
sequence to a capture never reads more elements from the source than the
prefix patterns require.

Concurrency

Patterns are immutable and may be shared. Captures are not: a capture is part
of a single match attempt at a time, and a pattern containing captures must
not be applied concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package patmatch

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patmatch'.
func tracer() tracing.Trace {
	return tracing.Select("patmatch")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("patmatch: "+msg, msgargs...)
		panic(msg)
	}
}
