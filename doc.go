/*
Package knit is a source-to-source rewriter for point-free expression
trees. Given an expression tree of atoms, symbols, sequences, sets,
mappings and application forms, it rewrites a four-level operator
grammar embedded in symbol names — composition and partial application,
at a tight and a loose tier each — into a strictly more primitive target
vocabulary: comp, partial, apply, pick, fn, let and quoting. Package
structure is as follows:

■ form: Package form provides the closed set of immutable tree node
variants every other package operates on.

■ notation: Package notation implements the token grammar which parses
the textual structure of a symbolic name.

■ rewrite: Package rewrite implements the preorder rewriter, the macro
rule table, the lifting transform and the binding desugarer, plus the
two entry points facing the macro-invocation surface.

■ sexp: Package sexp is a reader turning s-expression source text into
expression trees, used by tests and the REPL.

■ eval: Package eval interprets the produced target vocabulary, for the
REPL and for behavior-preservation tests.

The rewriting engine is pure and synchronous: trees are immutable value
data, so rewrites over disjoint inputs may run concurrently without
synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package knit
