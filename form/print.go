package form

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Canonical renderings, one per node kind:
//
//    atom        1  2.5  "str"  true  nil
//    name        foo   strings/join
//    sequence    [a b c]
//    application (f a b)
//    set         #{a b c}         members in canonical order
//    mapping     {k1 v1 k2 v2}
//    quoted      'x
//
// The rendering is used for fixtures in tests and for set canonicalization,
// so it has to be deterministic.

func (a *Atom) String() string {
	switch v := a.Value.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	}
	return fmt.Sprintf("%v", a.Value)
}

func (n *Name) String() string {
	if n.Space == "" {
		return n.Id
	}
	return n.Space + "/" + n.Id
}

func (s *Seq) String() string {
	return "[" + joined(s.Items) + "]"
}

func (a *Appl) String() string {
	return "(" + joined(a.Items) + ")"
}

// String renders the set members in canonical (sorted) order, regardless of
// insertion order, so that structurally equal sets render identically.
func (s *Set) String() string {
	ordered := treeset.NewWithStringComparator()
	for _, it := range s.items {
		ordered.Add(it.String())
	}
	var b strings.Builder
	b.WriteString("#{")
	for i, v := range ordered.Values() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.(string))
	}
	b.WriteByte('}')
	return b.String()
}

func (m *Mapping) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range m.Entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.Key.String())
		b.WriteByte(' ')
		b.WriteString(e.Val.String())
	}
	b.WriteByte('}')
	return b.String()
}

func (q *Quoted) String() string {
	return "'" + q.Inner.String()
}

func joined(items []Form) string {
	parts := make([]string, len(items))
	for i, it := range items {
		if it == nil {
			parts[i] = "<nil>"
			continue
		}
		parts[i] = it.String()
	}
	return strings.Join(parts, " ")
}
