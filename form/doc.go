/*
Package form provides the expression-tree data model for the knit
rewriting engine. It implements a closed set of node variants in a
Lisp-like fashion: opaque atoms, symbolic names, ordered sequences,
application forms, sets, key/value mappings and quote wrappers.

Trees built from these variants are immutable value data. Rewriting
never mutates a node in place; every transformation step produces a
new tree which shares unmodified substructure with its input. All
variants are pointer types, so "is this the node I started with?" is
a plain pointer comparison on the Form interface value — the preorder
rewriter relies on exactly that.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package form

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'knit.form'.
func tracer() tracing.Trace {
	return tracing.Select("knit.form")
}
