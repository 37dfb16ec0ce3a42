/*
Package rewrite implements the knit rewriting engine proper: a single-pass
preorder tree rewriter, the top-level macro rule table, the lifting
transform and the binding desugarer.

The preorder rewriter has a deliberately non-standard contract. At every
node the rule fires exactly once; if it produces a replacement (a different
instance), the replacement is final and is never itself rewritten. Only
when the rule hands the node back unchanged does the walk descend into the
children. Generic "rewrite and keep walking" tree utilities re-trigger
rules against a rule's own output; here that is defined away, which is what
makes one quote layer per pass and single token-grammar expansion per
symbol hold.

Two entry points face the macro-invocation surface: Expr rewrites one
expression with an optional binding list, Block rewrites an ordered
sequence of top-level forms independently. Nested invocations of either
entry point are expanded eagerly by the rule table, so quoting behaves the
same at every nesting depth.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package rewrite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'knit.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("knit.rewrite")
}
