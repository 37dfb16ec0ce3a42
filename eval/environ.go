package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knitlang/knit/form"
)

// Value is the evaluation result type. It holds one of: nil, bool, int64,
// float64, string, []Value (a sequence), *SetValue, *MapValue, a Callable,
// or a form.Form (quoted tree data).
type Value interface{}

// Callable is a function value.
type Callable interface {
	Name() string
	Call(args []Value) (Value, error)
}

// SetValue is an evaluated set: distinct values, insertion order.
type SetValue struct {
	Items []Value
}

// MapEntry is one evaluated key/value pair.
type MapEntry struct {
	Key Value
	Val Value
}

// MapValue is an evaluated mapping, order preserved.
type MapValue struct {
	Entries []MapEntry
}

// Environment is a scope: a name→value table with a parent link.
// Scopes form a tree rooted in the standard environment.
type Environment struct {
	name   string
	parent *Environment
	table  map[string]Value
}

// NewEnvironment creates a scope below parent (parent may be nil).
func NewEnvironment(name string, parent *Environment) *Environment {
	return &Environment{
		name:   name,
		parent: parent,
		table:  make(map[string]Value),
	}
}

// Def binds name to v in this scope, shadowing any outer binding.
func (env *Environment) Def(name string, v Value) {
	env.table[name] = v
}

// Resolve finds the value bound to name, searching outward through the
// scope tree.
func (env *Environment) Resolve(name string) (Value, bool) {
	for e := env; e != nil; e = e.parent {
		if v, ok := e.table[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Dump renders the scope chain for tracing.
func (env *Environment) Dump() string {
	var b strings.Builder
	for e := env; e != nil; e = e.parent {
		fmt.Fprintf(&b, "scope %s: %d bindings\n", e.name, len(e.table))
	}
	return b.String()
}

// Repr renders a value the way the REPL prints results. Sequences render
// like sequence forms, sets and mappings like their literals, functions as
// #<fn name>.
func Repr(v Value) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case string:
		return strconv.Quote(t)
	case []Value:
		return "[" + reprJoined(t) + "]"
	case *SetValue:
		return "#{" + reprJoined(t.Items) + "}"
	case *MapValue:
		parts := make([]string, 0, len(t.Entries)*2)
		for _, e := range t.Entries {
			parts = append(parts, Repr(e.Key), Repr(e.Val))
		}
		return "{" + strings.Join(parts, " ") + "}"
	case Callable:
		return "#<fn " + t.Name() + ">"
	case form.Form:
		return t.String()
	}
	return fmt.Sprintf("%v", v)
}

func reprJoined(vals []Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = Repr(v)
	}
	return strings.Join(parts, " ")
}
