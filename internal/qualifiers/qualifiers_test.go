package qualifiers

import (
	"testing"

	"alloy/internal/annotations"
)

func TestTableLookupIsTotal(t *testing.T) {
	table := Table{1: {Nullability: NotNull}}
	if q := table.Lookup(1); q.Nullability != NotNull {
		t.Fatalf("stored qualifier lost: %+v", q)
	}
	for _, idx := range []int{-1, 0, 2, 1 << 20} {
		if q := table.Lookup(idx); !q.IsZero() {
			t.Fatalf("index %d: expected zero qualifiers, got %+v", idx, q)
		}
	}
	var nilTable Table
	if q := nilTable.Lookup(0); !q.IsZero() {
		t.Fatalf("nil table must still be total, got %+v", q)
	}
}

func TestParseSpec(t *testing.T) {
	idx, q, err := ParseSpec("2:notnull,mutable,soft")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if idx != 2 || q.Nullability != NotNull || q.Mutability != Mutable || !q.WarningOnly {
		t.Fatalf("unexpected result: idx=%d q=%+v", idx, q)
	}

	for _, bad := range []string{"", "notnull", "x:notnull", "-1:notnull", "0:bogus"} {
		if _, _, err := ParseSpec(bad); err == nil {
			t.Fatalf("parse %q: expected error", bad)
		}
	}
}

func TestParseSpecsLastBindingWins(t *testing.T) {
	table, err := ParseSpecs([]string{"0:readonly", "0:mutable"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q := table.Lookup(0); q.Mutability != Mutable {
		t.Fatalf("later binding should replace earlier one: %+v", q)
	}
}

func TestFromAnnotations(t *testing.T) {
	set := annotations.Set{
		{Name: "org.jetbrains.annotations.NotNull"},
		{Name: "ReadOnly", Args: []string{"warning"}},
	}
	q := FromAnnotations(set)
	if q.Nullability != NotNull || q.Mutability != ReadOnly || !q.WarningOnly {
		t.Fatalf("unexpected qualifiers: %+v", q)
	}
	if q := FromAnnotations(nil); !q.IsZero() {
		t.Fatalf("empty set must derive zero qualifiers, got %+v", q)
	}
}
