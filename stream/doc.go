/*
Package stream implements a lazy, memoized view of one-shot sources.

A Source may be consumed exactly once, which is a problem for clients who
want to look ahead, backtrack or share the elements between several
independent readers. A List wraps a Source as a cons-list whose nodes are
resolved on first observation and then never change. Resolving a node reads
exactly one element from the underlying source; the tail of a freshly
resolved node is left unresolved. This makes it safe to hand out the tail of
an infinite source: nothing is read until somebody asks for it.

Cursors are mutable handles on a List. Cloning a cursor is O(1) and the
clone advances independently of the original:

    c := stream.Adopt(stream.FromSlice([]int{1, 2, 3}))
    d := c.Clone()
    c.Next()            // 1
    d.Next()            // 1 as well
    c.Rest().Take(2)    // [2 3]

Node resolution is guarded against concurrent first observation, so
cursors sharing one list may live on different goroutines. A Cache
remembers which sources have already been wrapped, so that wrapping the same
source twice yields the very same list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stream

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'patmatch.stream'.
func tracer() tracing.Trace {
	return tracing.Select("patmatch.stream")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("patmatch.stream: "+msg, msgargs...)
		panic(msg)
	}
}
