// Package qualifiers carries the externally supplied nullability and
// mutability facts for foreign type trees, keyed by the index protocol
// of internal/foreign.
package qualifiers

import "fmt"

// Nullability is the externally derived nullability hint for one node.
// The zero value is unknown.
type Nullability uint8

const (
	NullabilityUnknown Nullability = iota
	NotNull
	Nullable
)

func (n Nullability) String() string {
	switch n {
	case NotNull:
		return "notnull"
	case Nullable:
		return "nullable"
	default:
		return "unknown"
	}
}

// Mutability is the externally derived container mutability hint for
// one node. The zero value is unknown.
type Mutability uint8

const (
	MutabilityUnknown Mutability = iota
	ReadOnly
	Mutable
)

func (m Mutability) String() string {
	switch m {
	case ReadOnly:
		return "readonly"
	case Mutable:
		return "mutable"
	default:
		return "unknown"
	}
}

// Qualifiers bundles the hints for one indexed tree slot. The zero
// value means "nothing known".
type Qualifiers struct {
	Nullability Nullability
	Mutability  Mutability
	WarningOnly bool
}

// IsZero reports whether no hint is present.
func (q Qualifiers) IsZero() bool {
	return q == Qualifiers{}
}

func (q Qualifiers) String() string {
	out := q.Nullability.String() + "," + q.Mutability.String()
	if q.WarningOnly {
		out += ",soft"
	}
	return out
}

// Lookup resolves the qualifiers for a tree index. Implementations are
// total: any index, including out-of-range ones, yields a value (the
// zero Qualifiers when nothing is known) and never fails.
type Lookup func(index int) Qualifiers

// None is the total lookup that knows nothing.
func None(int) Qualifiers { return Qualifiers{} }

// Table is a sparse index-keyed qualifier source.
type Table map[int]Qualifiers

// Lookup adapts the table into a total Lookup; absent indices yield
// the zero Qualifiers.
func (t Table) Lookup(index int) Qualifiers {
	return t[index]
}

// ParseNullability reads the compact spelling used by specs and the
// manifest ("notnull" | "nullable").
func ParseNullability(s string) (Nullability, error) {
	switch s {
	case "notnull":
		return NotNull, nil
	case "nullable":
		return Nullable, nil
	case "":
		return NullabilityUnknown, nil
	}
	return NullabilityUnknown, fmt.Errorf("unknown nullability %q", s)
}

// ParseMutability reads the compact spelling ("readonly" | "mutable").
func ParseMutability(s string) (Mutability, error) {
	switch s {
	case "readonly":
		return ReadOnly, nil
	case "mutable":
		return Mutable, nil
	case "":
		return MutabilityUnknown, nil
	}
	return MutabilityUnknown, fmt.Errorf("unknown mutability %q", s)
}
