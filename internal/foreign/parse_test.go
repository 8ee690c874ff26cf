package foreign

import "testing"

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"java.lang.String",
		"int",
		"T",
		"java.util.List<java.lang.String>",
		"java.util.Map<java.lang.String, ? extends java.lang.Number>",
		"java.util.Map$Entry<K, V>",
		"java.util.List<?>",
		"java.util.List<? super T>",
		"java.lang.String[]",
		"int[][]",
		"p.Outer<p.Inner<T, ? extends p.Bound>>",
	}
	for _, src := range cases {
		n, err := Parse(src)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		if got := n.String(); got != src {
			t.Fatalf("round trip %q: got %q", src, got)
		}
	}
}

func TestParseKinds(t *testing.T) {
	n, err := Parse("java.util.List<T>")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !n.ClassifierIsClass() || n.Class != "java.util.List" {
		t.Fatalf("expected class classifier, got %+v", n)
	}
	if len(n.Args) != 1 || n.Args[0].IsWildcard() {
		t.Fatalf("expected one ordinary argument")
	}
	if arg := n.Args[0].Type; !arg.ClassifierIsTypeParam() || arg.Param != "T" {
		t.Fatalf("expected type-parameter classifier, got %+v", arg)
	}

	prim, err := Parse("boolean")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if prim.Kind != KindPrimitive || prim.Name != "boolean" {
		t.Fatalf("expected primitive, got %+v", prim)
	}

	arr, err := Parse("java.lang.String[]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if arr.Kind != KindArray || arr.Elem.Class != "java.lang.String" {
		t.Fatalf("expected array of String, got %+v", arr)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",
		"java.util.List<",
		"java.util.List<java.lang.String",
		"java.util.List<>",
		"T<U>",
		"java.lang.String[",
		"java.util.List>",
		".leading.Dot",
		"trailing.Dot.",
	}
	for _, src := range cases {
		if _, err := Parse(src); err == nil {
			t.Fatalf("parse %q: expected error", src)
		}
	}
}
