package builtins

import "alloy/internal/symbols"

func class(name symbols.ClassName, params ...symbols.TypeParamDecl) *symbols.Class {
	return &symbols.Class{Name: name, Params: params}
}

func out(name string) symbols.TypeParamDecl {
	return symbols.TypeParamDecl{Name: name, Variance: symbols.Covariant}
}

func in(name string) symbols.TypeParamDecl {
	return symbols.TypeParamDecl{Name: name, Variance: symbols.Contravariant}
}

func inv(name string) symbols.TypeParamDecl {
	return symbols.TypeParamDecl{Name: name}
}

// declared is the full set of host built-in class symbols. Read-only
// container interfaces are covariant; their mutable counterparts are
// invariant.
var declared = []*symbols.Class{
	class(AnyClass),
	class("alloy.String"),
	class("alloy.CharSequence"),
	class("alloy.Number"),
	class("alloy.Throwable"),
	class("alloy.Comparable", in("T")),
	class("alloy.Int"),
	class("alloy.Long"),
	class("alloy.Short"),
	class("alloy.Byte"),
	class("alloy.Char"),
	class("alloy.Boolean"),
	class("alloy.Float"),
	class("alloy.Double"),
	class(UnitClass),
	class(ArrayClass, inv("T")),
	class(UnresolvedClass),

	class("alloy.collections.Iterable", out("T")),
	class("alloy.collections.MutableIterable", inv("T")),
	class("alloy.collections.Iterator", out("T")),
	class("alloy.collections.MutableIterator", inv("T")),
	class("alloy.collections.ListIterator", out("T")),
	class("alloy.collections.MutableListIterator", inv("T")),
	class("alloy.collections.Collection", out("E")),
	class("alloy.collections.MutableCollection", inv("E")),
	class("alloy.collections.List", out("E")),
	class("alloy.collections.MutableList", inv("E")),
	class("alloy.collections.Set", out("E")),
	class("alloy.collections.MutableSet", inv("E")),
	class("alloy.collections.Map", inv("K"), out("V")),
	class("alloy.collections.MutableMap", inv("K"), inv("V")),
	class("alloy.collections.Map.Entry", out("K"), out("V")),
	class("alloy.collections.MutableMap.MutableEntry", inv("K"), inv("V")),
}

// Classes returns the host built-in class symbols used to seed a
// symbol table. The returned slice is fresh; the symbols themselves
// are shared and must not be mutated.
func Classes() []*symbols.Class {
	out := make([]*symbols.Class, len(declared))
	copy(out, declared)
	return out
}

// NewTable builds a symbol table seeded with every host built-in.
func NewTable() *symbols.Table {
	return symbols.NewTable(declared...)
}
