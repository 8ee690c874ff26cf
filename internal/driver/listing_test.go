package driver

import (
	"strings"
	"testing"

	"alloy/internal/qualifiers"
)

func TestParseListing(t *testing.T) {
	src := `
# parameter signatures of com.example.Service
java.util.List<java.lang.String> where 0:readonly,notnull
@Nullable java.lang.String
@DefaultValue("fall back") @NotNull java.lang.String
java.util.Map<java.lang.String, java.lang.Integer>  # trailing comment
`
	entries, err := ParseListing(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	first := entries[0]
	if first.Type.Class != "java.util.List" {
		t.Fatalf("first type = %s", first.Type)
	}
	if q := first.Quals.Lookup(0); q.Nullability != qualifiers.NotNull || q.Mutability != qualifiers.ReadOnly {
		t.Fatalf("first qualifiers = %+v", q)
	}

	second := entries[1]
	if _, ok := second.Anns.Find("Nullable"); !ok {
		t.Fatalf("second entry lost its annotation")
	}
	if second.Type.Class != "java.lang.String" {
		t.Fatalf("second type = %s", second.Type)
	}

	third := entries[2]
	if a, ok := third.Anns.Find("DefaultValue"); !ok || a.Args[0] != "fall back" {
		t.Fatalf("annotation argument with space lost: %+v", a)
	}
	if _, ok := third.Anns.Find("NotNull"); !ok {
		t.Fatalf("third entry must carry both annotations")
	}

	if entries[3].Line != 6 {
		t.Fatalf("line numbers must count raw lines, got %d", entries[3].Line)
	}
}

func TestParseListingErrors(t *testing.T) {
	cases := []string{
		"java.util.List<",
		"java.util.List<T> where x:notnull",
		"@Nullable",
		"@Broken( java.lang.String",
	}
	for _, src := range cases {
		if _, err := ParseListing(strings.NewReader(src)); err == nil {
			t.Fatalf("parse %q: expected error", src)
		}
	}
}
