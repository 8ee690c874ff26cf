// Package types is the host-side representation the enhancement core
// produces: concrete types with richly qualified nullability, and
// flexible lower/upper pairs for values whose exact shape the foreign
// side leaves open.
package types

import "alloy/internal/symbols"

// Projection is one type argument of a concrete type: a star
// projection, or a (possibly variance-marked) concrete type.
type Projection struct {
	Star     bool
	Variance symbols.Variance
	Type     *Concrete // nil iff Star
}

// StarProjection is the argument that stands for "any type".
func StarProjection() Projection { return Projection{Star: true} }

// Invariant wraps a type as a plain invariant argument.
func Invariant(t *Concrete) Projection { return Projection{Type: t} }

// Variant wraps a type with an explicit use-site variance.
func Variant(v symbols.Variance, t *Concrete) Projection {
	return Projection{Variance: v, Type: t}
}

// Concrete is one fully assembled host type.
type Concrete struct {
	Symbol   symbols.Ref
	Args     []Projection
	Nullable bool
}

// Resolved is the outcome of enhancing one foreign node: either a
// single concrete type or a flexible pair bracketing the value between
// a lower and an upper bound.
type Resolved struct {
	Lower    *Concrete
	Upper    *Concrete
	Flexible bool
}

// Single wraps one concrete type. Both accessors return it.
func Single(t *Concrete) Resolved {
	return Resolved{Lower: t, Upper: t}
}

// MakeFlexible pairs a lower and an upper bound.
func MakeFlexible(lower, upper *Concrete) Resolved {
	return Resolved{Lower: lower, Upper: upper, Flexible: true}
}
