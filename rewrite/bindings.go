package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"strings"

	"github.com/knitlang/knit/form"
)

// Bindings desugars an ordered, flat binding list
//
//	[l1 r1 l2 r2 …]
//
// into a flat list of plain (name expression) pairs suitable for
// sequential binding.
//
// Pairs are processed and emitted in reverse declaration order: the
// surface syntax requires each binding to be declared before the bindings
// it depends on, the inverse of sequential-binding order, so reversing
// satisfies dependencies once the result is consumed front to back.
//
// A left-hand side that is itself application-shaped denotes a (possibly
// curried) function definition; see desugarPair.
func Bindings(b *form.Seq) (*form.Seq, error) {
	if len(b.Items)%2 != 0 {
		return nil, newError(BadBinding, b, "binding list holds (name expression) pairs, length %d is odd", len(b.Items))
	}
	out := make([]form.Form, 0, len(b.Items))
	for i := len(b.Items) - 2; i >= 0; i -= 2 {
		name, expr, err := desugarPair(b.Items[i], b.Items[i+1])
		if err != nil {
			return nil, err
		}
		out = append(out, name, expr)
	}
	return form.NewSeq(out...), nil
}

// desugarPair turns one (left right) binding pair into a plain
// (name expression) pair.
//
// A plain-name left passes through with the right-hand side rewritten. An
// application-shaped left strips one single-parameter layer per nesting
// level; every stripped layer wraps the body into a one-parameter lambda.
// The lambda at curry depth i is named with the bound name plus i trailing
// apostrophes, outermost parameter group first:
//
//	((f x) y) = body   ⟼   f = (fn f (x) (fn f' (y) body))
//
// so a body can recurse into any specific partial-application depth by
// name: f re-enters from the outside, f' reuses the captured x.
func desugarPair(left, right form.Form) (*form.Name, form.Form, error) {
	var params []*form.Name // stripping order: last-applied parameter first
	for {
		switch l := left.(type) {
		case *form.Name:
			body, err := Walk(right, MacroRule)
			if err != nil {
				return nil, nil, err
			}
			expr := body
			for i, p := range params { // params[0] belongs to the innermost lambda
				lname := form.N(l.Id + strings.Repeat("'", len(params)-1-i))
				expr = form.NewAppl(form.N(SymFn), lname, form.NewSeq(p), expr)
			}
			return l, expr, nil
		case *form.Appl:
			if len(l.Items) != 2 {
				return nil, nil, newError(BadBinding, l, "a curried binding layer takes exactly one parameter")
			}
			param, ok := l.Items[1].(*form.Name)
			if !ok {
				return nil, nil, newError(BadBinding, l, "binding parameter must be a name")
			}
			params = append(params, param)
			left = l.Items[0]
		default:
			return nil, nil, newError(BadBinding, left, "binding left-hand side must be a name or a nested application shape")
		}
	}
}
