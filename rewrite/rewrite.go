package rewrite

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"github.com/knitlang/knit/form"
)

// Rule is a term rewriting function
//
//	form ↦ form
//
// applied by Walk at every node of a tree. A rule signals "no action" by
// returning its input unchanged — the same instance, not a structurally
// equal copy.
type Rule func(form.Form) (form.Form, error)

// Walk applies rule to every node of a tree exactly once, top-down.
//
// If the rule returns a different instance than its input, that result is
// final: Walk returns it without recursing into it. If the rule hands the
// node back, Walk descends into the children and reassembles a new node of
// the same container kind — applications stay applications, sets stay sets
// with deduplication re-applied, mappings have key and value of every
// entry rewritten independently. Atoms, names and quote markers are leaves
// once their rule has fired.
func Walk(f form.Form, rule Rule) (form.Form, error) {
	if f == nil {
		return nil, nil
	}
	r, err := rule(f)
	if err != nil {
		return nil, err
	}
	if r != f {
		tracer().Debugf("rule fired: %s ⟼ %s", f, r)
		return r, nil // a produced replacement is never itself rewritten
	}
	switch t := f.(type) {
	case *form.Atom, *form.Name, *form.Quoted:
		return f, nil
	case *form.Seq:
		items, err := walkItems(t.Items, rule)
		if err != nil {
			return nil, err
		}
		return form.NewSeq(items...), nil
	case *form.Appl:
		items, err := walkItems(t.Items, rule)
		if err != nil {
			return nil, err
		}
		return form.NewAppl(items...), nil
	case *form.Set:
		items, err := walkItems(t.Items(), rule)
		if err != nil {
			return nil, err
		}
		return form.NewSet(items...), nil
	case *form.Mapping:
		entries := make([]form.Entry, len(t.Entries))
		for i, e := range t.Entries {
			k, err := Walk(e.Key, rule)
			if err != nil {
				return nil, err
			}
			v, err := Walk(e.Val, rule)
			if err != nil {
				return nil, err
			}
			entries[i] = form.Entry{Key: k, Val: v}
		}
		return form.NewMapping(entries...), nil
	}
	return nil, newError(BadNode, f, "no rule-table action for node kind %s", f.Kind())
}

func walkItems(items []form.Form, rule Rule) ([]form.Form, error) {
	out := make([]form.Form, len(items))
	for i, it := range items {
		r, err := Walk(it, rule)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
