package eval

import (
	"testing"

	"github.com/knitlang/knit/rewrite"
	"github.com/knitlang/knit/sexp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// run sends source text through the full pipeline: read, rewrite, evaluate.
// The value of the last top-level form is returned.
func run(t *testing.T, env *Environment, src string) Value {
	t.Helper()
	forms, err := sexp.Parse(src)
	if err != nil {
		t.Fatalf("parsing %q failed: %v", src, err)
	}
	rewritten, err := rewrite.Block(forms)
	if err != nil {
		t.Fatalf("rewriting %q failed: %v", src, err)
	}
	var last Value
	for _, f := range rewritten {
		last, err = Eval(f, env)
		if err != nil {
			t.Fatalf("evaluating %s failed: %v", f, err)
		}
	}
	return last
}

func runFixture(t *testing.T, src string, expected string) {
	t.Helper()
	v := run(t, StandardEnvironment(), src)
	if Repr(v) != expected {
		t.Errorf("%q should evaluate to %s, is %s", src, expected, Repr(v))
	}
}

func TestEvalAtoms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.eval")
	defer teardown()
	//
	runFixture(t, "42", "42")
	runFixture(t, "-1.5", "-1.5")
	runFixture(t, `"hello"`, `"hello"`)
	runFixture(t, "nil", "nil")
	runFixture(t, "'2", "2") // a quoted digit is a number, not a selector
	runFixture(t, "'foo", "foo")
}

func TestEvalSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.eval")
	defer teardown()
	//
	runFixture(t, "((knit inc.2) 10 20 30)", "31")  // third from the front
	runFixture(t, "((knit inc.-1) 10 20 30)", "31") // first from the back
}

func TestEvalComposition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.eval")
	defer teardown()
	//
	runFixture(t, "((knit inc..reduce:+) [1 2 3])", "7")
	runFixture(t, "((knit map:.+:'1) [1 2 3])", "[2 3 4]")
}

func TestEvalLifting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.eval")
	defer teardown()
	//
	runFixture(t, "((knit (lift [first last])) [1 2 3])", "[1 3]")
	runFixture(t, `((knit (lift {"min" min "max" max})) 1 5 8)`, `{"min" 1 "max" 8}`)
	runFixture(t, "((knit (lift (+ first last))) [1 2 3])", "4")
}

func TestEvalCurriedDefinition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.eval")
	defer teardown()
	//
	env := StandardEnvironment()
	run(t, env, "(def ((pairup x) y) [x y])")
	v := run(t, env, "((pairup 1) 2)")
	if Repr(v) != "[1 2]" {
		t.Errorf("curried definition should apply one parameter group at a time, got %s", Repr(v))
	}
	// the intermediate value is the inner closure, named with one apostrophe
	v = run(t, env, "(pairup 1)")
	if Repr(v) != "#<fn pairup'>" {
		t.Errorf("partial application of a curried definition should be the inner closure, got %s", Repr(v))
	}
}

func TestEvalBindings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.eval")
	defer teardown()
	//
	// bindings are declared before their dependencies and evaluated after
	runFixture(t, "(knit (inc a) [a (inc b) b 5])", "7")
}

func TestEvalBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.eval")
	defer teardown()
	//
	runFixture(t, "(weave (def x 5) (inc x))", "6")
}

func TestEvalContainers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.eval")
	defer teardown()
	//
	runFixture(t, "[1 (inc 1) 3]", "[1 2 3]")
	runFixture(t, "#{1 (inc 0) 2}", "#{1 2}")
	runFixture(t, `{"a" (inc 0)}`, `{"a" 1}`)
}

func TestEvalVariadicNumerics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.eval")
	defer teardown()
	//
	runFixture(t, "(+ 1 2 3)", "6")
	runFixture(t, "(- 10 1 2)", "7")
	runFixture(t, "(- 3)", "-3")
	runFixture(t, "(* 2 3 4)", "24")
	runFixture(t, "(min 5 1 8)", "1")
	runFixture(t, "(max 5 1 8)", "8")
	runFixture(t, "(+ 1 0.5)", "1.5") // either float side promotes
}

func TestEnvironmentScoping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.eval")
	defer teardown()
	//
	outer := NewEnvironment("outer", nil)
	outer.Def("x", int64(1))
	inner := NewEnvironment("inner", outer)
	inner.Def("x", int64(2))
	if v, ok := inner.Resolve("x"); !ok || v != int64(2) {
		t.Errorf("inner scope should shadow, resolves to %v", v)
	}
	if v, ok := outer.Resolve("x"); !ok || v != int64(1) {
		t.Errorf("outer scope should be untouched, resolves to %v", v)
	}
	if _, ok := inner.Resolve("y"); ok {
		t.Errorf("unknown symbol should not resolve")
	}
}

func TestEvalErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "knit.eval")
	defer teardown()
	//
	env := StandardEnvironment()
	cases := []string{
		"unknown-symbol",
		"(1 2 3)",     // callee is not a function
		"(first 1)",   // not a sequence
		"(inc)",       // arity
		`(+ 1 "two")`, // not a number
		"((knit 0))",  // integer literals are not functions
	}
	for _, src := range cases {
		forms, err := sexp.Parse(src)
		if err != nil {
			t.Fatalf("parsing %q failed: %v", src, err)
		}
		rewritten, err := rewrite.Block(forms)
		if err != nil {
			t.Fatalf("rewriting %q failed: %v", src, err)
		}
		failed := false
		for _, f := range rewritten {
			if _, err = Eval(f, env); err != nil {
				failed = true
				break
			}
		}
		if !failed {
			t.Errorf("%q should fail to evaluate", src)
		}
	}
}
