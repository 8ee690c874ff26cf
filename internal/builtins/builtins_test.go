package builtins

import (
	"testing"

	"alloy/internal/symbols"
)

func TestHostClassMapping(t *testing.T) {
	cases := map[string]symbols.ClassName{
		"java.lang.Object":    "alloy.Any",
		"java.lang.String":    "alloy.String",
		"java.util.List":      "alloy.collections.List",
		"java.util.Map$Entry": "alloy.collections.Map.Entry",
		"java.lang.Void":      "alloy.Unit",
	}
	for foreignName, want := range cases {
		got, ok := HostClass(foreignName)
		if !ok || got != want {
			t.Fatalf("HostClass(%q) = %q, %v; want %q", foreignName, got, ok, want)
		}
	}
	if _, ok := HostClass("com.example.Custom"); ok {
		t.Fatalf("unmapped classes must miss")
	}
}

func TestContainerBijection(t *testing.T) {
	for ro, m := range map[symbols.ClassName]symbols.ClassName{
		"alloy.collections.List": "alloy.collections.MutableList",
		"alloy.collections.Map":  "alloy.collections.MutableMap",
	} {
		got, ok := MutableCounterpart(ro)
		if !ok || got != m {
			t.Fatalf("MutableCounterpart(%q) = %q, %v", ro, got, ok)
		}
		back, ok := ReadOnlyCounterpart(m)
		if !ok || back != ro {
			t.Fatalf("ReadOnlyCounterpart(%q) = %q, %v", m, back, ok)
		}
	}
	if _, ok := MutableCounterpart("alloy.String"); ok {
		t.Fatalf("non-container must have no counterpart")
	}
	if _, ok := ReadOnlyCounterpart("alloy.collections.List"); ok {
		t.Fatalf("read-only identity is not a mutable one")
	}
}

func TestBijectionIsClosedBothWays(t *testing.T) {
	for ro, m := range mutableByReadOnly {
		back, ok := ReadOnlyCounterpart(m)
		if !ok || back != ro {
			t.Fatalf("bijection broken for %q <-> %q", ro, m)
		}
	}
	if len(mutableByReadOnly) != len(readOnlyByMutable) {
		t.Fatalf("bijection must be one-to-one")
	}
}

func TestSeededTableCoversEveryMappedIdentity(t *testing.T) {
	table := NewTable()
	for _, host := range hostByForeign {
		if _, err := table.ResolveClass(host, 0); err != nil {
			t.Fatalf("mapped identity %q missing from table: %v", host, err)
		}
	}
	for ro, m := range mutableByReadOnly {
		for _, name := range []symbols.ClassName{ro, m} {
			if _, err := table.ResolveClass(name, 0); err != nil {
				t.Fatalf("bijection identity %q missing from table: %v", name, err)
			}
		}
	}
	for _, prim := range hostByPrimitive {
		if _, err := table.ResolveClass(prim, 0); err != nil {
			t.Fatalf("primitive identity %q missing from table: %v", prim, err)
		}
	}
}
