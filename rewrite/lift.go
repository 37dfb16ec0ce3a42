package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"strings"

	"github.com/knitlang/knit/form"
	"github.com/knitlang/knit/notation"
)

// Lift converts a container or application literal into a variadic
// function — conceptually (args…) → result — that distributes application
// of the argument list across the literal's structure:
//
//	[f g]      ⟼  (fn (& args) [(apply f args) (apply g args)])
//	{k v}      ⟼  keys and values both lifted and applied
//	(f a b)    ⟼  f called with every argument lifted and applied;
//	              the callee resolves through the token grammar but is
//	              not itself a function of the outer args
//	'x         ⟼  x, one quote layer consumed, no lifting below
//	name       ⟼  resolved via the token grammar, applied to the args
//	atom       ⟼  unchanged; atoms are not functions of the outer args
//
// Nested lift markers open a fresh rest parameter per nesting depth:
// args, args', args'', …
func Lift(f form.Form) (form.Form, error) {
	return liftAt(f, 0)
}

func liftAt(f form.Form, depth int) (form.Form, error) {
	rest := form.N(argsName(depth))
	body, err := distribute(f, rest, depth)
	if err != nil {
		return nil, err
	}
	lambda := form.NewAppl(form.N(SymFn), form.NewSeq(form.N(SymRest), rest), body)
	tracer().Debugf("lifted %s ⟼ %s", f, lambda)
	return lambda, nil
}

func argsName(depth int) string {
	return "args" + strings.Repeat("'", depth)
}

// distribute produces the "lifted and applied to args" version of a form.
func distribute(f form.Form, args *form.Name, depth int) (form.Form, error) {
	switch t := f.(type) {
	case *form.Seq:
		items, err := distributeItems(t.Items, args, depth)
		if err != nil {
			return nil, err
		}
		return form.NewSeq(items...), nil
	case *form.Set:
		items, err := distributeItems(t.Items(), args, depth)
		if err != nil {
			return nil, err
		}
		return form.NewSet(items...), nil
	case *form.Mapping:
		entries := make([]form.Entry, len(t.Entries))
		for i, e := range t.Entries {
			k, err := distribute(e.Key, args, depth)
			if err != nil {
				return nil, err
			}
			v, err := distribute(e.Val, args, depth)
			if err != nil {
				return nil, err
			}
			entries[i] = form.Entry{Key: k, Val: v}
		}
		return form.NewMapping(entries...), nil
	case *form.Appl:
		if t.CalleeIs(SymLift) {
			if len(t.Items) != 2 {
				return nil, newError(BadToken, t, "lift takes exactly one operand")
			}
			inner, err := liftAt(t.Items[1], depth+1)
			if err != nil {
				return nil, err
			}
			return applyTo(inner, args), nil
		}
		if len(t.Items) == 0 {
			return t, nil
		}
		callee := t.Items[0]
		switch c := callee.(type) {
		case *form.Name:
			callee = notation.ParseName(c)
		case *form.Quoted:
			callee = c.Inner
		}
		rest, err := distributeItems(t.Items[1:], args, depth)
		if err != nil {
			return nil, err
		}
		items := append([]form.Form{callee}, rest...)
		return form.NewAppl(items...), nil
	case *form.Quoted:
		return t.Inner, nil
	case *form.Name:
		return applyTo(notation.ParseName(t), args), nil
	}
	return f, nil // atoms
}

func distributeItems(items []form.Form, args *form.Name, depth int) ([]form.Form, error) {
	out := make([]form.Form, len(items))
	for i, it := range items {
		d, err := distribute(it, args, depth)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// applyTo applies a resolved value to an argument-list reference. Where a
// cheaper equivalent of the generic variadic apply exists, it is used
// instead; the shape changes, the observable behavior must not.
func applyTo(v form.Form, args form.Form) form.Form {
	if p, ok := v.(*form.Appl); ok && p.CalleeIs(notation.SymPartial) && len(p.Items) >= 2 {
		// splice the argument list onto the captured arguments:
		// (partial f c…) applied to args becomes (apply f c… args)
		items := make([]form.Form, 0, len(p.Items)+1)
		items = append(items, form.N(SymApply))
		items = append(items, p.Items[1:]...)
		items = append(items, args)
		return form.NewAppl(items...)
	}
	if rest, body, ok := restLambda(v); ok {
		// inline the engine-shaped lambda: bind its rest parameter to the
		// argument list directly instead of calling through a closure
		return form.NewAppl(form.N(SymLet), form.NewSeq(rest, args), body)
	}
	return form.NewAppl(form.N(SymApply), v, args)
}

// restLambda matches the exact variadic lambda shape the engine itself
// produces: (fn (& r) body) — one rest parameter, no fixed parameters,
// no name.
func restLambda(v form.Form) (*form.Name, form.Form, bool) {
	a, ok := v.(*form.Appl)
	if !ok || len(a.Items) != 3 || !a.CalleeIs(SymFn) {
		return nil, nil, false
	}
	params, ok := a.Items[1].(*form.Seq)
	if !ok || len(params.Items) != 2 {
		return nil, nil, false
	}
	amp, ok := params.Items[0].(*form.Name)
	if !ok || !amp.IsId(SymRest) {
		return nil, nil, false
	}
	rest, ok := params.Items[1].(*form.Name)
	if !ok {
		return nil, nil, false
	}
	return rest, a.Items[2], true
}
