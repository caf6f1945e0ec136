package lambda

import "testing"

func TestCanonicalizeIdentity(t *testing.T) {
	got := Canonicalize(NewAbs("x", NewVar("x")))
	want := Abs{Param: Var{Name: "x", Tag: 1}, Body: Var{Name: "x", Tag: 1}}
	if !Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCanonicalizeNestedBinders(t *testing.T) {
	// \x. \y. x : the occurrence of x refers to the outer binder.
	got := Canonicalize(NewAbs("x", NewAbs("y", NewVar("x"))))
	want := Abs{
		Param: Var{Name: "x", Tag: 1},
		Body: Abs{
			Param: Var{Name: "y", Tag: 2},
			Body:  Var{Name: "x", Tag: 1},
		},
	}
	if !Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCanonicalizeShadowing(t *testing.T) {
	// \x. \x. x : the occurrence binds to the nearest enclosing x.
	got := Canonicalize(NewAbs("x", NewAbs("x", NewVar("x"))))
	want := Abs{
		Param: Var{Name: "x", Tag: 1},
		Body: Abs{
			Param: Var{Name: "x", Tag: 2},
			Body:  Var{Name: "x", Tag: 2},
		},
	}
	if !Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCanonicalizeFreeVariables(t *testing.T) {
	// y is free under \x and stays untagged; a bare free variable is
	// returned unchanged.
	got := Canonicalize(NewAbs("x", NewVar("y")))
	want := Abs{Param: Var{Name: "x", Tag: 1}, Body: Var{Name: "y"}}
	if !Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if !Equal(Canonicalize(NewVar("f")), Var{Name: "f"}) {
		t.Error("free variable gained a tag")
	}
}

func TestCanonicalizeSiblingBinders(t *testing.T) {
	// Binders down independent application branches get distinct tags, so
	// a later substitution can never conflate them.
	got := Canonicalize(NewApp(NewAbs("x", NewVar("x")), NewAbs("y", NewVar("y"))))
	want := App{
		Fun: Abs{Param: Var{Name: "x", Tag: 1}, Body: Var{Name: "x", Tag: 1}},
		Arg: Abs{Param: Var{Name: "y", Tag: 2}, Body: Var{Name: "y", Tag: 2}},
	}
	if !Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCanonicalizeApplicationSharesScope(t *testing.T) {
	// \x. (x x) : both occurrences carry the binder's tag.
	got := Canonicalize(NewAbs("x", NewApp(NewVar("x"), NewVar("x"))))
	want := Abs{
		Param: Var{Name: "x", Tag: 1},
		Body:  App{Fun: Var{Name: "x", Tag: 1}, Arg: Var{Name: "x", Tag: 1}},
	}
	if !Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	terms := []Term{
		NewAbs("x", NewVar("x")),
		NewAbs("x", NewAbs("y", NewApp(NewVar("x"), NewVar("y")))),
		NewApp(NewAbs("x", NewApp(NewVar("x"), NewVar("f"))), NewAbs("z", NewVar("z"))),
		NewAbs("x", NewAbs("x", NewVar("x"))),
	}
	for _, term := range terms {
		once := Canonicalize(term)
		twice := Canonicalize(once)
		if !Equal(once, twice) {
			t.Errorf("canonicalization not idempotent for %v: %v vs %v", term, once, twice)
		}
	}
}
