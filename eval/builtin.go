package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"

	"github.com/knitlang/knit/notation"
	"github.com/knitlang/knit/rewrite"
)

// Builtin is a function value implemented in Go.
type Builtin struct {
	name string
	fn   func([]Value) (Value, error)
}

var _ Callable = (*Builtin)(nil)

// Name returns the builtin's bound name.
func (b *Builtin) Name() string { return b.name }

// Call invokes the builtin.
func (b *Builtin) Call(args []Value) (Value, error) {
	return b.fn(args)
}

// composed is the value of (comp f g …): rightmost function applied to
// the call arguments, results threaded leftward.
type composed struct {
	fns []Callable
}

var _ Callable = (*composed)(nil)

func (c *composed) Name() string { return notation.SymComp }

func (c *composed) Call(args []Value) (Value, error) {
	if len(c.fns) == 0 {
		return nil, fmt.Errorf("empty composition")
	}
	v, err := c.fns[len(c.fns)-1].Call(args)
	if err != nil {
		return nil, err
	}
	for i := len(c.fns) - 2; i >= 0; i-- {
		v, err = c.fns[i].Call([]Value{v})
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// partially is the value of (partial f c…): f with leading arguments
// captured ahead of the call-time arguments.
type partially struct {
	fn       Callable
	captured []Value
}

var _ Callable = (*partially)(nil)

func (p *partially) Name() string { return notation.SymPartial }

func (p *partially) Call(args []Value) (Value, error) {
	full := make([]Value, 0, len(p.captured)+len(args))
	full = append(full, p.captured...)
	full = append(full, args...)
	return p.fn.Call(full)
}

// StandardEnvironment creates the root scope holding the target
// vocabulary's primitives plus a handful of everyday functions.
func StandardEnvironment() *Environment {
	env := NewEnvironment("standard", nil)
	def := func(name string, fn func([]Value) (Value, error)) {
		env.Def(name, &Builtin{name: name, fn: fn})
	}
	def(rewrite.SymApply, biApply)
	def(notation.SymComp, biComp)
	def(notation.SymPartial, biPartial)
	def(notation.SymPick, biPick)
	def("first", biFirst)
	def("last", biLast)
	def("rest", biRest)
	def("inc", biInc)
	def("list", biList)
	def("+", biAdd)
	def("-", biSub)
	def("*", biMul)
	def("min", biMin)
	def("max", biMax)
	def("map", biMap)
	def("reduce", biReduce)
	return env
}

// (apply f a b coll) — call f with the fixed leading arguments followed by
// the spread trailing sequence.
func biApply(args []Value) (Value, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("apply needs a function and an argument list")
	}
	fn, ok := args[0].(Callable)
	if !ok {
		return nil, fmt.Errorf("apply: %s is not a function", Repr(args[0]))
	}
	tail, ok := args[len(args)-1].([]Value)
	if !ok {
		return nil, fmt.Errorf("apply: last argument must be a sequence, got %s", Repr(args[len(args)-1]))
	}
	full := make([]Value, 0, len(args)-2+len(tail))
	full = append(full, args[1:len(args)-1]...)
	full = append(full, tail...)
	return fn.Call(full)
}

func biComp(args []Value) (Value, error) {
	fns := make([]Callable, len(args))
	for i, a := range args {
		fn, ok := a.(Callable)
		if !ok {
			return nil, fmt.Errorf("comp: %s is not a function", Repr(a))
		}
		fns[i] = fn
	}
	return &composed{fns: fns}, nil
}

func biPartial(args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("partial needs a function")
	}
	fn, ok := args[0].(Callable)
	if !ok {
		return nil, fmt.Errorf("partial: %s is not a function", Repr(args[0]))
	}
	captured := make([]Value, len(args)-1)
	copy(captured, args[1:])
	return &partially{fn: fn, captured: captured}, nil
}

// (pick i a0 a1 …) — the argument at position i, counted from the back
// for negative i.
func biPick(args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("pick needs a position")
	}
	i, ok := args[0].(int64)
	if !ok {
		return nil, fmt.Errorf("pick: position must be an integer, got %s", Repr(args[0]))
	}
	rest := args[1:]
	idx := int(i)
	if idx < 0 {
		idx += len(rest)
	}
	if idx < 0 || idx >= len(rest) {
		return nil, fmt.Errorf("pick: position %d out of range for %d arguments", i, len(rest))
	}
	return rest[idx], nil
}

func asSeq(name string, args []Value) ([]Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s takes one sequence argument", name)
	}
	seq, ok := args[0].([]Value)
	if !ok {
		return nil, fmt.Errorf("%s: %s is not a sequence", name, Repr(args[0]))
	}
	return seq, nil
}

func biFirst(args []Value) (Value, error) {
	seq, err := asSeq("first", args)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, nil
	}
	return seq[0], nil
}

func biLast(args []Value) (Value, error) {
	seq, err := asSeq("last", args)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, nil
	}
	return seq[len(seq)-1], nil
}

func biRest(args []Value) (Value, error) {
	seq, err := asSeq("rest", args)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return []Value{}, nil
	}
	out := make([]Value, len(seq)-1)
	copy(out, seq[1:])
	return out, nil
}

func biInc(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("inc takes one argument")
	}
	switch n := args[0].(type) {
	case int64:
		return n + 1, nil
	case float64:
		return n + 1, nil
	}
	return nil, fmt.Errorf("inc: %s is not a number", Repr(args[0]))
}

func biList(args []Value) (Value, error) {
	out := make([]Value, len(args))
	copy(out, args)
	return out, nil
}

func biAdd(args []Value) (Value, error) {
	return foldNum("+", args, int64(0), func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b })
}

func biSub(args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("- needs at least one argument")
	}
	if len(args) == 1 {
		switch n := args[0].(type) {
		case int64:
			return -n, nil
		case float64:
			return -n, nil
		}
		return nil, fmt.Errorf("-: %s is not a number", Repr(args[0]))
	}
	return foldNumFrom("-", args, func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b })
}

func biMul(args []Value) (Value, error) {
	return foldNum("*", args, int64(1), func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b })
}

func biMin(args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("min needs at least one argument")
	}
	return foldNumFrom("min", args, func(a, b int64) int64 {
		if b < a {
			return b
		}
		return a
	}, func(a, b float64) float64 {
		if b < a {
			return b
		}
		return a
	})
}

func biMax(args []Value) (Value, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("max needs at least one argument")
	}
	return foldNumFrom("max", args, func(a, b int64) int64 {
		if b > a {
			return b
		}
		return a
	}, func(a, b float64) float64 {
		if b > a {
			return b
		}
		return a
	})
}

func biMap(args []Value) (Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("map takes a function and a sequence")
	}
	fn, ok := args[0].(Callable)
	if !ok {
		return nil, fmt.Errorf("map: %s is not a function", Repr(args[0]))
	}
	seq, ok := args[1].([]Value)
	if !ok {
		return nil, fmt.Errorf("map: %s is not a sequence", Repr(args[1]))
	}
	out := make([]Value, len(seq))
	for i, v := range seq {
		r, err := fn.Call([]Value{v})
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// (reduce f coll) or (reduce f init coll) — left fold.
func biReduce(args []Value) (Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, fmt.Errorf("reduce takes a function, an optional seed and a sequence")
	}
	fn, ok := args[0].(Callable)
	if !ok {
		return nil, fmt.Errorf("reduce: %s is not a function", Repr(args[0]))
	}
	seq, ok := args[len(args)-1].([]Value)
	if !ok {
		return nil, fmt.Errorf("reduce: %s is not a sequence", Repr(args[len(args)-1]))
	}
	var acc Value
	if len(args) == 3 {
		acc = args[1]
	} else {
		if len(seq) == 0 {
			return fn.Call(nil)
		}
		acc = seq[0]
		seq = seq[1:]
	}
	for _, v := range seq {
		r, err := fn.Call([]Value{acc, v})
		if err != nil {
			return nil, err
		}
		acc = r
	}
	return acc, nil
}

// --- numeric folding -------------------------------------------------------

// foldNum folds all arguments starting from a unit value.
func foldNum(name string, args []Value, unit int64, fi func(a, b int64) int64,
	ff func(a, b float64) float64) (Value, error) {
	acc := Value(unit)
	for _, a := range args {
		r, err := num2(name, acc, a, fi, ff)
		if err != nil {
			return nil, err
		}
		acc = r
	}
	return acc, nil
}

// foldNumFrom folds starting from the first argument.
func foldNumFrom(name string, args []Value, fi func(a, b int64) int64,
	ff func(a, b float64) float64) (Value, error) {
	acc := args[0]
	if !isNum(acc) {
		return nil, fmt.Errorf("%s: %s is not a number", name, Repr(acc))
	}
	for _, a := range args[1:] {
		r, err := num2(name, acc, a, fi, ff)
		if err != nil {
			return nil, err
		}
		acc = r
	}
	return acc, nil
}

func isNum(v Value) bool {
	switch v.(type) {
	case int64, float64:
		return true
	}
	return false
}

// num2 combines two numbers, promoting to float64 if either side is one.
func num2(name string, a, b Value, fi func(a, b int64) int64,
	ff func(a, b float64) float64) (Value, error) {
	if !isNum(b) {
		return nil, fmt.Errorf("%s: %s is not a number", name, Repr(b))
	}
	ai, aIsInt := a.(int64)
	bi, bIsInt := b.(int64)
	if aIsInt && bIsInt {
		return fi(ai, bi), nil
	}
	return ff(toFloat(a), toFloat(b)), nil
}

func toFloat(v Value) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
