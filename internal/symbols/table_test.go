package symbols

import (
	"errors"
	"testing"
)

func TestStrictTableResolvesSeededClasses(t *testing.T) {
	list := &Class{Name: "alloy.collections.List", Params: []TypeParamDecl{{Name: "E", Variance: Covariant}}}
	table := NewTable(list)

	got, err := table.ResolveClass("alloy.collections.List", 1)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != list {
		t.Fatalf("expected the seeded symbol, got %+v", got)
	}

	_, err = table.ResolveClass("missing.Thing", 0)
	if !errors.Is(err, ErrUnresolvedClass) {
		t.Fatalf("expected ErrUnresolvedClass, got %v", err)
	}
}

func TestLenientTableFabricatesOnce(t *testing.T) {
	table := NewTable().Lenient()
	first, err := table.ResolveClass("com.example.Box", 2)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(first.Params) != 2 || first.Params[0].Variance != Invariant {
		t.Fatalf("fabricated params wrong: %+v", first.Params)
	}
	second, err := table.ResolveClass("com.example.Box", 2)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if first != second {
		t.Fatalf("fabrication must be stable per name")
	}
	if table.Len() != 1 {
		t.Fatalf("expected one defined class, got %d", table.Len())
	}
}

func TestDefineReplaces(t *testing.T) {
	table := NewTable(&Class{Name: "a.B"})
	repl := &Class{Name: "a.B", Params: []TypeParamDecl{{Name: "T"}}}
	table.Define(repl)
	got, err := table.ResolveClass("a.B", 1)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != repl {
		t.Fatalf("Define must replace the earlier symbol")
	}
	if table.Len() != 1 {
		t.Fatalf("replacement must not grow the arena, len=%d", table.Len())
	}
}

func TestParamSetIdentity(t *testing.T) {
	set := NewParamSet()
	a := set.TypeParam("T")
	b := set.TypeParam("T")
	if a != b {
		t.Fatalf("same name must yield the same symbol")
	}
	if set.TypeParam("U") == a {
		t.Fatalf("distinct names must yield distinct symbols")
	}
}

func TestClassNameSimple(t *testing.T) {
	if got := ClassName("alloy.collections.MutableList").Simple(); got != "MutableList" {
		t.Fatalf("Simple: %q", got)
	}
	if got := ClassName("T").Simple(); got != "T" {
		t.Fatalf("Simple: %q", got)
	}
}
