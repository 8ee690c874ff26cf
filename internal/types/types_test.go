package types

import (
	"testing"

	"alloy/internal/symbols"
)

func TestRendering(t *testing.T) {
	listClass := &symbols.Class{Name: "alloy.collections.MutableList"}
	strClass := &symbols.Class{Name: "alloy.String"}
	tp := &symbols.TypeParam{Name: "T"}

	str := &Concrete{Symbol: symbols.ClassRef(strClass)}
	nullable := &Concrete{Symbol: symbols.ClassRef(strClass), Nullable: true}
	list := &Concrete{Symbol: symbols.ClassRef(listClass), Args: []Projection{Invariant(str)}}

	cases := []struct {
		got  string
		want string
	}{
		{str.String(), "String"},
		{nullable.String(), "String?"},
		{list.String(), "MutableList<String>"},
		{(&Concrete{Symbol: symbols.ParamRef(tp)}).String(), "T"},
		{StarProjection().String(), "*"},
		{Variant(symbols.Covariant, str).String(), "out String"},
		{Variant(symbols.Contravariant, str).String(), "in String"},
		{Single(str).String(), "String"},
		{MakeFlexible(list, nullable).String(), "MutableList<String>..String?"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("render: got %q, want %q", tc.got, tc.want)
		}
	}
}

func TestSingleSharesBothBounds(t *testing.T) {
	c := &Concrete{Symbol: symbols.ClassRef(&symbols.Class{Name: "alloy.Int"})}
	r := Single(c)
	if r.Flexible || r.Lower != c || r.Upper != c {
		t.Fatalf("single must expose the same type on both bounds: %+v", r)
	}
}
