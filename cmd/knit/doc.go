/*
Package knit/main provides an interactive command line tool for the knit
rewriting engine. Lines are read as s-expressions, passed through the
point-free rewriter, and the rewritten form is printed together with its
evaluated result. The REPL serves as a sandbox for experiments with the
symbol grammar, lifting and curried bindings.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'knit.repl'
func tracer() tracing.Trace {
	return tracing.Select("knit.repl")
}
