package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"

	"github.com/knitlang/knit/form"
	"github.com/knitlang/knit/rewrite"
)

// Eval evaluates a form in an environment.
func Eval(f form.Form, env *Environment) (Value, error) {
	switch t := f.(type) {
	case *form.Atom:
		return t.Value, nil
	case *form.Name:
		v, ok := env.Resolve(t.String())
		if !ok {
			return nil, fmt.Errorf("unable to resolve symbol '%s'", t)
		}
		return v, nil
	case *form.Quoted:
		return t.Inner, nil // quoted trees evaluate to themselves as data
	case *form.Seq:
		return evalItems(t.Items, env)
	case *form.Set:
		items, err := evalItems(t.Items(), env)
		if err != nil {
			return nil, err
		}
		return newSetValue(items), nil
	case *form.Mapping:
		entries := make([]MapEntry, len(t.Entries))
		for i, e := range t.Entries {
			k, err := Eval(e.Key, env)
			if err != nil {
				return nil, err
			}
			v, err := Eval(e.Val, env)
			if err != nil {
				return nil, err
			}
			entries[i] = MapEntry{Key: k, Val: v}
		}
		return &MapValue{Entries: entries}, nil
	case *form.Appl:
		return evalAppl(t, env)
	}
	return nil, fmt.Errorf("cannot evaluate node kind %s", f.Kind())
}

func evalItems(items []form.Form, env *Environment) ([]Value, error) {
	out := make([]Value, len(items))
	for i, it := range items {
		v, err := Eval(it, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func newSetValue(items []Value) *SetValue {
	s := &SetValue{}
	seen := make(map[string]bool, len(items))
	for _, v := range items {
		r := Repr(v)
		if seen[r] {
			continue
		}
		seen[r] = true
		s.Items = append(s.Items, v)
	}
	return s
}

func evalAppl(a *form.Appl, env *Environment) (Value, error) {
	if len(a.Items) == 0 {
		return nil, nil
	}
	if n, ok := a.Callee().(*form.Name); ok && n.Space == "" {
		switch n.Id {
		case rewrite.SymFn:
			return evalFn(a, env)
		case rewrite.SymLet:
			return evalLet(a, env)
		case rewrite.SymDef:
			return evalDef(a, env)
		case rewrite.SymDo:
			return evalDo(a, env)
		}
	}
	head, err := Eval(a.Callee(), env)
	if err != nil {
		return nil, err
	}
	fn, ok := head.(Callable)
	if !ok {
		return nil, fmt.Errorf("callee %s is not a function", a.Callee())
	}
	args, err := evalItems(a.Args(), env)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("call %s with %d args", fn.Name(), len(args))
	return fn.Call(args)
}

// Closure is a lambda value with its defining environment. A named
// closure binds its own name inside every call, so the nested lambdas of
// a curried definition (f, f', f'', …) can recurse into themselves.
type Closure struct {
	name   string
	params []*form.Name // fixed parameters
	rest   *form.Name   // rest parameter after '&', or nil
	body   form.Form
	env    *Environment
}

var _ Callable = (*Closure)(nil)

// Name returns the closure's name, or "lambda" for an anonymous one.
func (c *Closure) Name() string {
	if c.name == "" {
		return "lambda"
	}
	return c.name
}

// Call binds arguments to parameters in a fresh scope and evaluates the
// closure body.
func (c *Closure) Call(args []Value) (Value, error) {
	cenv := NewEnvironment(c.Name(), c.env)
	if c.name != "" {
		cenv.Def(c.name, c)
	}
	if c.rest == nil && len(args) != len(c.params) {
		return nil, fmt.Errorf("%s expects %d arguments, got %d", c.Name(), len(c.params), len(args))
	}
	if c.rest != nil && len(args) < len(c.params) {
		return nil, fmt.Errorf("%s expects at least %d arguments, got %d", c.Name(), len(c.params), len(args))
	}
	for i, p := range c.params {
		cenv.Def(p.String(), args[i])
	}
	if c.rest != nil {
		rest := make([]Value, len(args)-len(c.params))
		copy(rest, args[len(c.params):])
		cenv.Def(c.rest.String(), rest)
	}
	return Eval(c.body, cenv)
}

// evalFn builds a closure from (fn name (params) body) or
// (fn (params) body). A params sequence is fixed names, optionally
// followed by '& rest'.
func evalFn(a *form.Appl, env *Environment) (Value, error) {
	items := a.Items
	name := ""
	idx := 1
	if len(items) == 4 {
		n, ok := items[1].(*form.Name)
		if !ok {
			return nil, fmt.Errorf("fn name must be a symbol: %s", a)
		}
		name = n.String()
		idx = 2
	}
	if len(items) != idx+2 {
		return nil, fmt.Errorf("malformed fn form: %s", a)
	}
	paramSeq, ok := items[idx].(*form.Seq)
	if !ok {
		return nil, fmt.Errorf("fn parameters must be a sequence: %s", a)
	}
	c := &Closure{name: name, body: items[idx+1], env: env}
	rest := false
	for _, p := range paramSeq.Items {
		n, ok := p.(*form.Name)
		if !ok {
			return nil, fmt.Errorf("fn parameter must be a symbol: %s", p)
		}
		switch {
		case n.IsId(rewrite.SymRest):
			rest = true
		case rest:
			if c.rest != nil {
				return nil, fmt.Errorf("only one rest parameter allowed: %s", a)
			}
			c.rest = n
		default:
			c.params = append(c.params, n)
		}
	}
	if rest && c.rest == nil {
		return nil, fmt.Errorf("missing rest parameter after '&': %s", a)
	}
	return c, nil
}

// evalLet evaluates (let (n1 e1 n2 e2 …) body): bindings are installed
// sequentially in a fresh scope, then the body is evaluated there.
func evalLet(a *form.Appl, env *Environment) (Value, error) {
	if len(a.Items) != 3 {
		return nil, fmt.Errorf("malformed let form: %s", a)
	}
	pairs, ok := a.Items[1].(*form.Seq)
	if !ok || len(pairs.Items)%2 != 0 {
		return nil, fmt.Errorf("let bindings must be a pair sequence: %s", a)
	}
	lenv := NewEnvironment("let", env)
	for i := 0; i < len(pairs.Items); i += 2 {
		n, ok := pairs.Items[i].(*form.Name)
		if !ok {
			return nil, fmt.Errorf("let binds symbols only: %s", pairs.Items[i])
		}
		v, err := Eval(pairs.Items[i+1], lenv)
		if err != nil {
			return nil, err
		}
		lenv.Def(n.String(), v)
	}
	return Eval(a.Items[2], lenv)
}

func evalDef(a *form.Appl, env *Environment) (Value, error) {
	if len(a.Items) != 3 {
		return nil, fmt.Errorf("malformed def form: %s", a)
	}
	n, ok := a.Items[1].(*form.Name)
	if !ok {
		return nil, fmt.Errorf("def binds symbols only: %s", a.Items[1])
	}
	v, err := Eval(a.Items[2], env)
	if err != nil {
		return nil, err
	}
	env.Def(n.String(), v)
	return v, nil
}

func evalDo(a *form.Appl, env *Environment) (Value, error) {
	var last Value
	for _, f := range a.Args() {
		v, err := Eval(f, env)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}
