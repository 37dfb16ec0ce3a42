/*
Package eval interprets the primitive target vocabulary the knit rewriter
produces: function composition, partial application, variadic application,
positional argument extraction, lambdas, sequential let-bindings and
quoting. The rewriter itself never evaluates anything — it is a pure
tree-to-tree transformation; this package sits at the boundary on the
other side, so the REPL can show results and the tests can check that a
rewrite is behavior-preserving, not just shape-correct.

Evaluation is environment-based: scopes form a tree of name→value tables,
closures capture their defining environment, and a named closure has its
own name bound inside itself so curried definitions can recurse into any
partial-application depth (f, f', f'', …).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'knit.eval'.
func tracer() tracing.Trace {
	return tracing.Select("knit.eval")
}
