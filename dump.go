package patmatch

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders a pattern as a tree, one node per line. It is meant for
// debugging complex patterns:
//
//	.
//	└── Or
//	    ├── NotNull
//	    │   └── x
//	    └── x
func Dump[T any](p Pattern[T]) string {
	printer := tp.New()
	dumpNode(printer, p)
	return printer.String()
}

func dumpNode(printer tp.Tree, p fmt.Stringer) {
	c, ok := p.(composite)
	if !ok {
		printer.AddNode(p.String())
		return
	}
	branch := printer.AddBranch(c.label())
	for _, ch := range c.children() {
		dumpNode(branch, ch)
	}
}
