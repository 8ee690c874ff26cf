// Package builtins holds the fixed identity tables of the host type
// system: foreign built-in to host built-in class mapping and the
// read-only/mutable container bijection. Everything here is built once
// at package initialization and never mutated, so concurrent readers
// need no synchronization.
package builtins

import "alloy/internal/symbols"

// Well-known host identities referenced by the enhancement core.
const (
	AnyClass        symbols.ClassName = "alloy.Any"
	UnitClass       symbols.ClassName = "alloy.Unit"
	ArrayClass      symbols.ClassName = "alloy.Array"
	UnresolvedClass symbols.ClassName = "alloy.internal.Unresolved"
)

// ObjectClass is the foreign root type; an `? extends java.lang.Object`
// wildcard carries no information and collapses to a star projection.
const ObjectClass = "java.lang.Object"

var hostByForeign = map[string]symbols.ClassName{
	"java.lang.Object":       AnyClass,
	"java.lang.String":       "alloy.String",
	"java.lang.CharSequence": "alloy.CharSequence",
	"java.lang.Number":       "alloy.Number",
	"java.lang.Throwable":    "alloy.Throwable",
	"java.lang.Comparable":   "alloy.Comparable",
	"java.lang.Integer":      "alloy.Int",
	"java.lang.Long":         "alloy.Long",
	"java.lang.Short":        "alloy.Short",
	"java.lang.Byte":         "alloy.Byte",
	"java.lang.Character":    "alloy.Char",
	"java.lang.Boolean":      "alloy.Boolean",
	"java.lang.Float":        "alloy.Float",
	"java.lang.Double":       "alloy.Double",
	"java.lang.Void":         UnitClass,
	"java.lang.Iterable":     "alloy.collections.Iterable",
	"java.util.Iterator":     "alloy.collections.Iterator",
	"java.util.ListIterator": "alloy.collections.ListIterator",
	"java.util.Collection":   "alloy.collections.Collection",
	"java.util.List":         "alloy.collections.List",
	"java.util.Set":          "alloy.collections.Set",
	"java.util.Map":          "alloy.collections.Map",
	"java.util.Map$Entry":    "alloy.collections.Map.Entry",
}

var hostByPrimitive = map[string]symbols.ClassName{
	"int":     "alloy.Int",
	"long":    "alloy.Long",
	"short":   "alloy.Short",
	"byte":    "alloy.Byte",
	"char":    "alloy.Char",
	"boolean": "alloy.Boolean",
	"float":   "alloy.Float",
	"double":  "alloy.Double",
	"void":    UnitClass,
}

// mutableByReadOnly is the closed container bijection; the reverse map
// is derived below.
var mutableByReadOnly = map[symbols.ClassName]symbols.ClassName{
	"alloy.collections.Iterable":     "alloy.collections.MutableIterable",
	"alloy.collections.Iterator":     "alloy.collections.MutableIterator",
	"alloy.collections.ListIterator": "alloy.collections.MutableListIterator",
	"alloy.collections.Collection":   "alloy.collections.MutableCollection",
	"alloy.collections.List":         "alloy.collections.MutableList",
	"alloy.collections.Set":          "alloy.collections.MutableSet",
	"alloy.collections.Map":          "alloy.collections.MutableMap",
	"alloy.collections.Map.Entry":    "alloy.collections.MutableMap.MutableEntry",
}

var readOnlyByMutable = func() map[symbols.ClassName]symbols.ClassName {
	out := make(map[symbols.ClassName]symbols.ClassName, len(mutableByReadOnly))
	for ro, m := range mutableByReadOnly {
		out[m] = ro
	}
	return out
}()

// HostClass maps a foreign built-in class identity to its host
// counterpart. Unmapped identities keep their own name.
func HostClass(foreignName string) (symbols.ClassName, bool) {
	host, ok := hostByForeign[foreignName]
	return host, ok
}

// HostPrimitive maps a foreign primitive spelling to a host class.
func HostPrimitive(name string) (symbols.ClassName, bool) {
	host, ok := hostByPrimitive[name]
	return host, ok
}

// MutableCounterpart returns the mutable identity of a read-only
// container, if the name is part of the bijection.
func MutableCounterpart(name symbols.ClassName) (symbols.ClassName, bool) {
	m, ok := mutableByReadOnly[name]
	return m, ok
}

// ReadOnlyCounterpart returns the read-only identity of a mutable
// container, if the name is part of the bijection.
func ReadOnlyCounterpart(name symbols.ClassName) (symbols.ClassName, bool) {
	ro, ok := readOnlyByMutable[name]
	return ro, ok
}
