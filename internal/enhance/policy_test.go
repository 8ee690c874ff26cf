package enhance

import (
	"testing"

	"alloy/internal/qualifiers"
)

func TestNullabilityPolicyTable(t *testing.T) {
	cases := []struct {
		pos  boundPosition
		null qualifiers.Nullability
		want bool
	}{
		{posInflexible, qualifiers.NullabilityUnknown, false},
		{posInflexible, qualifiers.Nullable, false},
		{posInflexible, qualifiers.NotNull, false},
		{posLower, qualifiers.Nullable, true},
		{posLower, qualifiers.NotNull, false},
		{posLower, qualifiers.NullabilityUnknown, false},
		{posUpper, qualifiers.Nullable, true},
		{posUpper, qualifiers.NotNull, false},
		{posUpper, qualifiers.NullabilityUnknown, true},
	}
	for _, tc := range cases {
		if got := nullableFor(tc.pos, tc.null); got != tc.want {
			t.Fatalf("nullableFor(%d, %s) = %v, want %v", tc.pos, tc.null, got, tc.want)
		}
	}
}

func TestHostIdentityDefaults(t *testing.T) {
	none := qualifiers.Qualifiers{}
	if got := hostIdentity("java.util.List", posLower, none); got != "alloy.collections.MutableList" {
		t.Fatalf("lower default = %s", got)
	}
	if got := hostIdentity("java.util.List", posUpper, none); got != "alloy.collections.List" {
		t.Fatalf("upper default = %s", got)
	}
	// Non-container identities map without substitution.
	if got := hostIdentity("java.lang.String", posLower, none); got != "alloy.String" {
		t.Fatalf("string lower = %s", got)
	}
	// Unmapped identities keep their own name.
	if got := hostIdentity("com.example.Foo", posLower, none); got != "com.example.Foo" {
		t.Fatalf("unmapped = %s", got)
	}
}

func TestHostIdentityDirectionLock(t *testing.T) {
	readOnly := qualifiers.Qualifiers{Mutability: qualifiers.ReadOnly}
	mutable := qualifiers.Qualifiers{Mutability: qualifiers.Mutable}

	// READ_ONLY tightens the lower bound only.
	if got := hostIdentity("java.util.List", posLower, readOnly); got != "alloy.collections.List" {
		t.Fatalf("readonly lower = %s", got)
	}
	if got := hostIdentity("java.util.List", posUpper, readOnly); got != "alloy.collections.List" {
		t.Fatalf("readonly upper = %s (must stay the default)", got)
	}

	// MUTABLE loosens the upper bound only.
	if got := hostIdentity("java.util.List", posUpper, mutable); got != "alloy.collections.MutableList" {
		t.Fatalf("mutable upper = %s", got)
	}
	if got := hostIdentity("java.util.List", posLower, mutable); got != "alloy.collections.MutableList" {
		t.Fatalf("mutable lower = %s (default already mutable)", got)
	}
}
