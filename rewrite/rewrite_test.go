package rewrite

import (
	"testing"

	"github.com/knitlang/knit/form"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWalkNonReentry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.rewrite")
	defer teardown()
	//
	fired := 0
	rule := func(f form.Form) (form.Form, error) {
		if n, ok := f.(*form.Name); ok && n.IsId("x") {
			fired++
			return form.NewAppl(form.N("wrapped"), form.N("x")), nil
		}
		return f, nil
	}
	tree := form.NewSeq(form.N("x"), form.N("y"))
	out, err := Walk(tree, rule)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if out.String() != "[(wrapped x) y]" {
		t.Errorf("walk should produce [(wrapped x) y], is %s", out)
	}
	// the produced (wrapped x) holds a fresh name x; the rule must never
	// have seen it
	if fired != 1 {
		t.Errorf("rule must fire once per original node, fired %d times", fired)
	}
}

func TestWalkRebuildsContainers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.rewrite")
	defer teardown()
	//
	// both members rewrite to (comp a b); set uniqueness is re-applied
	s := form.NewSet(form.N("a.b"), form.N("a..b"))
	out, err := Walk(s, MacroRule)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	set, ok := out.(*form.Set)
	if !ok {
		t.Fatalf("set must stay a set, is %s", out.Kind())
	}
	if set.Len() != 1 {
		t.Errorf("rewritten set should collapse to one member, has %d: %s", set.Len(), set)
	}
	//
	m := form.NewMapping(form.Entry{Key: form.N("first.rest"), Val: form.Quote(form.N("v"))})
	out, err = Walk(m, MacroRule)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if out.String() != "{(comp first rest) v}" {
		t.Errorf("mapping keys and values must both rewrite, got %s", out)
	}
}

func TestQuotingIsConsumedOncePerPass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.rewrite")
	defer teardown()
	//
	// unwrapping must return exactly the wrapped form, untransformed
	inner := form.N("first.rest")
	out, err := Walk(form.Quote(inner), MacroRule)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if out != form.Form(inner) {
		t.Errorf("quote must unwrap to the identical inner form, got %s", out)
	}
	// one layer per pass: a doubly quoted form keeps its second layer
	twice := form.Quote(form.Quote(form.N("a.b")))
	out, err = Walk(twice, MacroRule)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if out.String() != "'a.b" {
		t.Errorf("double quote should shed one layer only, got %s", out)
	}
}

func TestRuleTableLift(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.rewrite")
	defer teardown()
	//
	lifted, err := Walk(form.NewAppl(form.N(SymLift), form.N("inc")), MacroRule)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if lifted.String() != "(fn [& args] (apply inc args))" {
		t.Errorf("lift of a name should apply the resolved value, got %s", lifted)
	}
	//
	if _, err = Walk(form.NewAppl(form.N(SymLift)), MacroRule); err == nil {
		t.Errorf("lift without operand must be rejected")
	} else if rerr, ok := err.(*Error); !ok || rerr.Kind != BadToken {
		t.Errorf("lift arity failure should be a malformed-token error, got %v", err)
	}
}

func TestRuleTableEagerExpansion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.rewrite")
	defer teardown()
	//
	// a nested single-expression invocation expands in place, so quoting
	// behaves the same at any nesting depth
	nested := form.NewSeq(form.NewAppl(form.N(SymKnit), form.Quote(form.N("foo.bar"))))
	out, err := Walk(nested, MacroRule)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if out.String() != "[foo.bar]" {
		t.Errorf("nested invocation should expand eagerly, keeping the quoted name inert: %s", out)
	}
	//
	block := form.NewAppl(form.N(SymWeave), form.N("first.rest"), form.Quote(form.N("x")))
	out, err = Walk(block, MacroRule)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if out.String() != "(do (comp first rest) x)" {
		t.Errorf("nested block should expand to a do sequence, got %s", out)
	}
}

func TestExprWithBindings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.rewrite")
	defer teardown()
	//
	// declaration order is the inverse of evaluation order
	bindings := form.NewSeq(
		form.N("a"), form.NewAppl(form.N("g"), form.N("b")),
		form.N("b"), form.Int(5),
	)
	out, err := Expr(form.N("a"), bindings)
	if err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	if out.String() != "(let [b 5 a (g b)] a)" {
		t.Errorf("bindings should reverse into dependency order, got %s", out)
	}
}

func TestBlockKeepsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.rewrite")
	defer teardown()
	//
	forms := []form.Form{form.N("first.rest"), form.Quote(form.N("x")), form.Int(1)}
	out, err := Block(forms)
	if err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("block must keep all forms, got %d", len(out))
	}
	expected := []string{"(comp first rest)", "x", "1"}
	for i, f := range out {
		if f.String() != expected[i] {
			t.Errorf("block form %d should be %s, is %s", i, expected[i], f)
		}
	}
}
