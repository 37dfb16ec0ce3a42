package form

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/

// Kind discriminates the variants of the closed Form type.
type Kind int8

// The complete set of node kinds. There will never be others; rewriting
// code is expected to switch exhaustively over these.
const (
	AtomKind Kind = iota
	NameKind
	SeqKind
	ApplKind
	SetKind
	MappingKind
	QuotedKind
)

func (k Kind) String() string {
	switch k {
	case AtomKind:
		return "Atom"
	case NameKind:
		return "Name"
	case SeqKind:
		return "Seq"
	case ApplKind:
		return "Appl"
	case SetKind:
		return "Set"
	case MappingKind:
		return "Mapping"
	case QuotedKind:
		return "Quoted"
	}
	return "<unknown kind>"
}

// Form is one node of an expression tree. Every Form is exactly one of
// *Atom, *Name, *Seq, *Appl, *Set, *Mapping or *Quoted.
type Form interface {
	Kind() Kind
	String() string
}

// --- Atom ------------------------------------------------------------------

// Atom is an opaque literal value, carried through rewriting unchanged.
// Value holds nil, bool, int64, float64 or string.
type Atom struct {
	Value interface{}
}

// A creates an atom node.
func A(value interface{}) *Atom {
	return &Atom{Value: value}
}

// Int creates an integer atom.
func Int(n int64) *Atom {
	return &Atom{Value: n}
}

// Kind returns AtomKind.
func (a *Atom) Kind() Kind { return AtomKind }

// --- Name ------------------------------------------------------------------

// Name is a symbolic identifier, optionally carrying a namespace prefix.
// The prefix is opaque to the engine: the token grammar only ever inspects
// the local part. Names where a namespace separator follows grammar
// punctuation are not representable here; the reader resolves the prefix
// before the engine sees the symbol (see package notation).
type Name struct {
	Space string // optional namespace prefix, "" if absent
	Id    string // local part
}

// N creates a name node without a namespace.
func N(id string) *Name {
	return &Name{Id: id}
}

// NQ creates a namespace-qualified name node.
func NQ(space, id string) *Name {
	return &Name{Space: space, Id: id}
}

// Kind returns NameKind.
func (n *Name) Kind() Kind { return NameKind }

// IsId returns true iff n is an unqualified name with local part id.
func (n *Name) IsId(id string) bool {
	return n.Space == "" && n.Id == id
}

// --- Seq -------------------------------------------------------------------

// Seq is a literal ordered sequence of forms (an array-like container,
// as opposed to an application form).
type Seq struct {
	Items []Form
}

// NewSeq creates a literal sequence node.
func NewSeq(items ...Form) *Seq {
	return &Seq{Items: items}
}

// Kind returns SeqKind.
func (s *Seq) Kind() Kind { return SeqKind }

// --- Appl ------------------------------------------------------------------

// Appl is an application form: the first item is the callee, the remaining
// items are arguments.
type Appl struct {
	Items []Form
}

// NewAppl creates an application node.
func NewAppl(items ...Form) *Appl {
	return &Appl{Items: items}
}

// Kind returns ApplKind.
func (a *Appl) Kind() Kind { return ApplKind }

// Callee returns the operator position of the application, or nil for an
// empty application.
func (a *Appl) Callee() Form {
	if len(a.Items) == 0 {
		return nil
	}
	return a.Items[0]
}

// Args returns the argument forms of the application.
func (a *Appl) Args() []Form {
	if len(a.Items) == 0 {
		return nil
	}
	return a.Items[1:]
}

// CalleeIs returns true iff the callee is the unqualified name id.
func (a *Appl) CalleeIs(id string) bool {
	if n, ok := a.Callee().(*Name); ok {
		return n.IsId(id)
	}
	return false
}

// --- Set -------------------------------------------------------------------

// Set is an unordered collection of distinct forms. Distinctness is
// structural: two members with equal digests collapse into one, the first
// occurrence wins. Iteration order is insertion order; the canonical
// String rendering is ordered independently of insertion.
type Set struct {
	items []Form
}

// NewSet creates a set node, deduplicating members structurally.
func NewSet(items ...Form) *Set {
	s := &Set{}
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		d := Digest(it)
		if seen[d] {
			tracer().Debugf("duplicate set member %v collapsed", it)
			continue
		}
		seen[d] = true
		s.items = append(s.items, it)
	}
	return s
}

// Kind returns SetKind.
func (s *Set) Kind() Kind { return SetKind }

// Items returns the distinct members in insertion order. Callers must not
// modify the returned slice.
func (s *Set) Items() []Form {
	return s.items
}

// Len returns the number of distinct members.
func (s *Set) Len() int {
	return len(s.items)
}

// Contains reports whether f is structurally a member of the set.
func (s *Set) Contains(f Form) bool {
	d := Digest(f)
	for _, it := range s.items {
		if Digest(it) == d {
			return true
		}
	}
	return false
}

// --- Mapping ---------------------------------------------------------------

// Entry is one key/value pair of a mapping.
type Entry struct {
	Key Form
	Val Form
}

// Mapping is an ordered collection of key/value entries. Keys are not
// required to be unique during rewriting; transforms which produce
// duplicates leave the consequences to the caller.
type Mapping struct {
	Entries []Entry
}

// NewMapping creates a mapping node from entries.
func NewMapping(entries ...Entry) *Mapping {
	return &Mapping{Entries: entries}
}

// Kind returns MappingKind.
func (m *Mapping) Kind() Kind { return MappingKind }

// --- Quoted ----------------------------------------------------------------

// Quoted wraps exactly one nested form, marking it rewrite-inert for one
// rewriting pass. Unwrapping consumes the marker permanently: one layer of
// quoting is spent per pass.
type Quoted struct {
	Inner Form
}

// Quote wraps a form into a quote marker.
func Quote(f Form) *Quoted {
	return &Quoted{Inner: f}
}

// Kind returns QuotedKind.
func (q *Quoted) Kind() Kind { return QuotedKind }
