package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"github.com/knitlang/knit/form"
	"github.com/knitlang/knit/notation"
)

// Names of the target vocabulary produced by the engine, beyond the ones
// the token grammar emits (see package notation).
const (
	SymApply = "apply" // variadic application: fixed leading args + trailing list
	SymFn    = "fn"    // (fn name (param) body) or (fn (& rest) body)
	SymLet   = "let"   // (let (n1 e1 n2 e2 …) body)
	SymDef   = "def"   // top-level definition
	SymDo    = "do"    // ordered sequence of forms
	SymRest  = "&"     // rest-parameter marker inside a params sequence
)

// Macro callee names recognized by the rule table.
const (
	SymLift  = "lift"  // lifting transform marker
	SymKnit  = "knit"  // single-expression entry point
	SymWeave = "weave" // block entry point
)

// MacroRule is the top-level rule table driving all external macro entry
// points:
//
//	Name              apply the token grammar
//	Quoted(x)         unwrap to x, consuming one quote layer
//	(lift x)          lifting transform of x
//	(def l r)         binding rewriter, as a one-pair binding list
//	(knit …)          eager one-step expansion of the nested entry point
//	(weave …)         eager one-step expansion of the nested entry point
//	anything else     no action (Walk descends into the children)
func MacroRule(f form.Form) (form.Form, error) {
	switch t := f.(type) {
	case *form.Name:
		return notation.ParseName(t), nil
	case *form.Quoted:
		return t.Inner, nil
	case *form.Appl:
		switch {
		case t.CalleeIs(SymLift):
			if len(t.Items) != 2 {
				return nil, newError(BadToken, t, "lift takes exactly one operand")
			}
			return Lift(t.Items[1])
		case t.CalleeIs(SymDef):
			if len(t.Items) != 3 {
				return nil, newError(BadBinding, t, "def takes a left-hand side and one expression")
			}
			name, expr, err := desugarPair(t.Items[1], t.Items[2])
			if err != nil {
				return nil, err
			}
			return form.NewAppl(form.N(SymDef), name, expr), nil
		case t.CalleeIs(SymKnit):
			return expandNested(t)
		case t.CalleeIs(SymWeave):
			rewritten, err := Block(t.Args())
			if err != nil {
				return nil, err
			}
			items := append([]form.Form{form.N(SymDo)}, rewritten...)
			return form.NewAppl(items...), nil
		}
	}
	return f, nil
}

// expandNested expands a nested single-expression invocation one step, so
// quoting behaves consistently regardless of nesting depth.
func expandNested(t *form.Appl) (form.Form, error) {
	switch len(t.Items) {
	case 2:
		return Expr(t.Items[1], nil)
	case 3:
		bindings, ok := t.Items[2].(*form.Seq)
		if !ok {
			return nil, newError(BadToken, t, "binding list must be a sequence")
		}
		return Expr(t.Items[1], bindings)
	}
	return nil, newError(BadToken, t, "knit takes one expression and an optional binding list")
}

// Expr is the single-expression entry point. It rewrites one expression
// and an optional ordered binding list into a single form equivalent to
// "evaluate the rewritten bindings in dependency order, then evaluate the
// rewritten expression in that scope".
func Expr(f form.Form, bindings *form.Seq) (form.Form, error) {
	body, err := Walk(f, MacroRule)
	if err != nil {
		return nil, err
	}
	if bindings == nil || len(bindings.Items) == 0 {
		return body, nil
	}
	pairs, err := Bindings(bindings)
	if err != nil {
		return nil, err
	}
	return form.NewAppl(form.N(SymLet), pairs, body), nil
}

// Block is the block entry point. Every form passes independently through
// the single-expression rewrite, with no binding list; order is preserved.
func Block(forms []form.Form) ([]form.Form, error) {
	out := make([]form.Form, len(forms))
	for i, f := range forms {
		r, err := Expr(f, nil)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
