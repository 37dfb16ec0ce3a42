package notation

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"strconv"
	"strings"

	"github.com/knitlang/knit/form"
)

// Primitive names of the target vocabulary produced by the grammar.
const (
	SymComp    = "comp"    // (comp f g …)     ⟼ f(g(…(x)))
	SymPartial = "partial" // (partial f a …)  ⟼ f with leading args bound
	SymPick    = "pick"    // (pick i a0 a1 …) ⟼ ai, from the back if i < 0
)

// The quote marker inside symbol text.
const quoteMarker = '\''

// ParseName interprets the textual structure of a symbolic name as a
// nested expression over the four grammar operators. A name without any
// grammar structure is returned as the very same instance, which the
// preorder rewriter takes as "nothing happened here, descend".
//
// The namespace prefix of the name takes no part in parsing; it is
// re-attached to plain name tokens of the result.
func ParseName(n *form.Name) form.Form {
	parsed := parseSymbol(n.Id, n.Space)
	if res, ok := parsed.(*form.Name); ok && res.Space == n.Space && res.Id == n.Id {
		return n // no grammar structure: identity
	}
	tracer().Debugf("symbol %s parsed to %s", n, parsed)
	return parsed
}

// Split levels, outermost first: ":." then ".." then ":" then ".".
// A singleton segment at any level degenerates and passes through to the
// next tier without an operator wrapper.

func parseSymbol(id, space string) form.Form {
	segs := strings.Split(id, ":.")
	nodes := make([]form.Form, len(segs))
	for i, s := range segs {
		nodes[i] = parseLooseComp(s, space)
	}
	return combine(SymPartial, nodes)
}

func parseLooseComp(s, space string) form.Form {
	pieces := strings.Split(s, "..")
	nodes := make([]form.Form, len(pieces))
	for i, p := range pieces {
		nodes[i] = parseTightPartial(p, space)
	}
	return combine(SymComp, nodes)
}

func parseTightPartial(s, space string) form.Form {
	pieces := strings.Split(s, ":")
	nodes := make([]form.Form, len(pieces))
	for i, p := range pieces {
		nodes[i] = parseTightComp(p, space)
	}
	return combine(SymPartial, nodes)
}

func parseTightComp(s, space string) form.Form {
	pieces := strings.Split(s, ".")
	nodes := make([]form.Form, len(pieces))
	for i, p := range pieces {
		nodes[i] = resolveToken(p, space)
	}
	return combine(SymComp, nodes)
}

func combine(op string, nodes []form.Form) form.Form {
	if len(nodes) == 1 {
		return nodes[0]
	}
	items := make([]form.Form, 0, len(nodes)+1)
	items = append(items, form.N(op))
	items = append(items, nodes...)
	return form.NewAppl(items...)
}

// resolveToken resolves an indivisible token, checked in order:
// integer literal → argument selector; quote marker + integer → the
// literal integer; quote marker + token → quoted bare name; otherwise a
// plain name reference with the namespace re-attached.
func resolveToken(tok, space string) form.Form {
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		// argument selector, from the back for negative positions
		return form.NewAppl(form.N(SymPartial), form.N(SymPick), form.Int(i))
	}
	if len(tok) > 1 && tok[0] == quoteMarker {
		rest := tok[1:]
		if i, err := strconv.ParseInt(rest, 10, 64); err == nil {
			return form.Int(i) // literal integer, never a selector
		}
		return form.Quote(form.N(rest)) // rewrite-inert bare name
	}
	return &form.Name{Space: space, Id: tok}
}
