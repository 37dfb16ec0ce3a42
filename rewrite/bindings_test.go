package rewrite

import (
	"testing"

	"github.com/knitlang/knit/form"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBindingsReverseOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.rewrite")
	defer teardown()
	//
	b := form.NewSeq(
		form.N("a"), form.NewAppl(form.N("g"), form.N("b")),
		form.N("b"), form.Int(5),
	)
	pairs, err := Bindings(b)
	if err != nil {
		t.Fatalf("desugaring bindings failed: %v", err)
	}
	if pairs.String() != "[b 5 a (g b)]" {
		t.Errorf("pairs should come out in dependency order [b 5 a (g b)], are %s", pairs)
	}
}

func TestBindingsCurried(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.rewrite")
	defer teardown()
	//
	// ((f x) y) = body   ⟼   f = (fn f (x) (fn f' (y) body))
	lhs := form.NewAppl(form.NewAppl(form.N("f"), form.N("x")), form.N("y"))
	b := form.NewSeq(lhs, form.N("body"))
	pairs, err := Bindings(b)
	if err != nil {
		t.Fatalf("desugaring bindings failed: %v", err)
	}
	if pairs.String() != "[f (fn f [x] (fn f' [y] body))]" {
		t.Errorf("curried binding desugars wrong: %s", pairs)
	}
}

func TestBindingsRewriteRightHandSides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.rewrite")
	defer teardown()
	//
	b := form.NewSeq(form.N("f"), form.N("first.rest"))
	pairs, err := Bindings(b)
	if err != nil {
		t.Fatalf("desugaring bindings failed: %v", err)
	}
	if pairs.String() != "[f (comp first rest)]" {
		t.Errorf("right-hand sides must pass through the rewriter, got %s", pairs)
	}
}

func TestBindingsMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.rewrite")
	defer teardown()
	//
	malformed := []*form.Seq{
		// odd length
		form.NewSeq(form.N("a"), form.Int(1), form.N("b")),
		// a curried layer with two parameters
		form.NewSeq(form.NewAppl(form.N("f"), form.N("x"), form.N("y")), form.Int(1)),
		// a parameter which is not a name
		form.NewSeq(form.NewAppl(form.N("f"), form.Int(3)), form.Int(1)),
		// a left-hand side which is neither name nor application shape
		form.NewSeq(form.Int(7), form.Int(1)),
	}
	for i, b := range malformed {
		_, err := Bindings(b)
		if err == nil {
			t.Errorf("binding list %d (%s) should be rejected", i, b)
			continue
		}
		if rerr, ok := err.(*Error); !ok || rerr.Kind != BadBinding {
			t.Errorf("binding list %d should fail with a binding error, got %v", i, err)
		}
	}
}

func TestDefDesugarsLikeABinding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.rewrite")
	defer teardown()
	//
	lhs := form.NewAppl(form.NewAppl(form.N("pairup"), form.N("x")), form.N("y"))
	def := form.NewAppl(form.N(SymDef), lhs, form.NewSeq(form.N("x"), form.N("y")))
	out, err := Walk(def, MacroRule)
	if err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	if out.String() != "(def pairup (fn pairup [x] (fn pairup' [y] [x y])))" {
		t.Errorf("def should desugar its curried left-hand side, got %s", out)
	}
}
