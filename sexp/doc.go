/*
Package sexp provides a reader for knit source text. It turns s-expression
style input into expression trees (see package form):

	(f a b)        application
	[a b c]        literal sequence
	#{a b c}       set
	{k v k v}      mapping
	'x             quote
	"str" 1 2.5    atoms, plus nil / true / false
	strings/join   namespace-qualified symbol

The rewriting engine itself never touches raw text; this reader exists at
the boundary, for tests and for the REPL. Comments start with ';' and run
to the end of the line; commas count as whitespace.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package sexp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'knit.sexp'.
func tracer() tracing.Trace {
	return tracing.Select("knit.sexp")
}
