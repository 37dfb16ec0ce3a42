package sexp

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/knitlang/knit/form"
)

// Parse reads source text and returns the top-level forms in order.
func Parse(input string) ([]form.Form, error) {
	sc, err := newScanner(input)
	if err != nil {
		return nil, err
	}
	p := &parser{sc: sc}
	if err := p.advance(); err != nil {
		return nil, err
	}
	items := arraylist.New()
	for p.tok.typ != tokEOF {
		f, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		items.Add(f)
	}
	return toForms(items), nil
}

// ParseForm reads source text that must contain exactly one form.
func ParseForm(input string) (form.Form, error) {
	forms, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if len(forms) != 1 {
		return nil, fmt.Errorf("expected exactly one form, got %d", len(forms))
	}
	return forms[0], nil
}

type parser struct {
	sc  *scanner
	tok token
}

func (p *parser) advance() error {
	t, err := p.sc.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) parseForm() (form.Form, error) {
	t := p.tok
	switch t.typ {
	case tokQuote:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		return form.Quote(inner), nil
	case tokLParen:
		items, err := p.parseDelimited(tokRParen)
		if err != nil {
			return nil, err
		}
		return form.NewAppl(items...), nil
	case tokLBrack:
		items, err := p.parseDelimited(tokRBrack)
		if err != nil {
			return nil, err
		}
		return form.NewSeq(items...), nil
	case tokSetBrace:
		items, err := p.parseDelimited(tokRBrace)
		if err != nil {
			return nil, err
		}
		return form.NewSet(items...), nil
	case tokLBrace:
		items, err := p.parseDelimited(tokRBrace)
		if err != nil {
			return nil, err
		}
		if len(items)%2 != 0 {
			return nil, fmt.Errorf("mapping literal needs key/value pairs, got %d forms", len(items))
		}
		entries := make([]form.Entry, 0, len(items)/2)
		for i := 0; i < len(items); i += 2 {
			entries = append(entries, form.Entry{Key: items[i], Val: items[i+1]})
		}
		return form.NewMapping(entries...), nil
	case tokNum:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return numAtom(t.lexeme)
	case tokString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return form.A(strings.Trim(t.lexeme, `"`)), nil
	case tokId:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return symbol(t.lexeme), nil
	case tokEOF:
		return nil, fmt.Errorf("unexpected end of input")
	}
	return nil, fmt.Errorf("unexpected token %s", t)
}

// parseDelimited consumes the opening token, the inner forms, and the
// closing token.
func (p *parser) parseDelimited(closing int) ([]form.Form, error) {
	open := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	items := arraylist.New()
	for p.tok.typ != closing {
		if p.tok.typ == tokEOF {
			return nil, fmt.Errorf("missing %s for %s", tokName(closing), open)
		}
		f, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		items.Add(f)
	}
	if err := p.advance(); err != nil { // skip closing token
		return nil, err
	}
	return toForms(items), nil
}

func toForms(items *arraylist.List) []form.Form {
	forms := make([]form.Form, 0, items.Size())
	it := items.Iterator()
	for it.Next() {
		forms = append(forms, it.Value().(form.Form))
	}
	return forms
}

func numAtom(lexeme string) (form.Form, error) {
	if i, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
		return form.Int(i), nil
	}
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return nil, fmt.Errorf("bad number literal %q", lexeme)
	}
	return form.A(f), nil
}

// symbol resolves a scanned identifier: the keywords nil/true/false become
// atoms, everything else becomes a name. A '/' with text on both sides
// splits off the namespace prefix; the prefix is opaque from here on, so
// namespace separators must come before any grammar punctuation of the
// local part.
func symbol(lexeme string) form.Form {
	switch lexeme {
	case "nil":
		return form.A(nil)
	case "true":
		return form.A(true)
	case "false":
		return form.A(false)
	}
	if idx := strings.Index(lexeme, "/"); idx > 0 && idx < len(lexeme)-1 {
		return form.NQ(lexeme[:idx], lexeme[idx+1:])
	}
	return form.N(lexeme)
}
