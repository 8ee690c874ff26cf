package enhance

import (
	"alloy/internal/builtins"
	"alloy/internal/foreign"
	"alloy/internal/qualifiers"
	"alloy/internal/symbols"
	"alloy/internal/types"
)

// boundPosition locates one concrete type inside a flexible pair.
type boundPosition uint8

const (
	posInflexible boundPosition = iota
	posLower
	posUpper
)

// shouldEnhance reports whether qualifier overrides apply at the
// position. Inflexible types take the unqualified defaults.
func (p boundPosition) shouldEnhance() bool {
	return p == posLower || p == posUpper
}

// enhanceBound assembles one concrete bound of a classifier node.
func enhanceBound(n *foreign.Node, pos boundPosition, lookup qualifiers.Lookup, env Env, index int) (*types.Concrete, error) {
	q := lookup(index)

	var sym symbols.Ref
	switch {
	case n.ClassifierIsClass():
		cls, err := env.Classes.ResolveClass(hostIdentity(n.Class, pos, q), len(n.Args))
		if err != nil {
			return nil, err
		}
		sym = symbols.ClassRef(cls)
	case n.ClassifierIsTypeParam():
		sym = symbols.ParamRef(env.Params.TypeParam(n.Param))
	default:
		// Unknown classifier: no flexible treatment for this node.
		return convertDirect(n, env)
	}

	args, err := enhanceArgs(n, sym, pos, lookup, env, index)
	if err != nil {
		return nil, err
	}

	return &types.Concrete{
		Symbol:   sym,
		Args:     args,
		Nullable: nullableFor(pos, q.Nullability),
	}, nil
}

// hostIdentity picks the host class identity for one bound: the
// built-in foreign-to-host mapping, the unconditional mutable default
// at the lower bound, then the direction-locked explicit overrides.
// Identities outside the tables keep their own name; type-parameter
// symbols never reach this path.
func hostIdentity(foreignName string, pos boundPosition, q qualifiers.Qualifiers) symbols.ClassName {
	name, ok := builtins.HostClass(foreignName)
	if !ok {
		name = symbols.ClassName(foreignName)
	}
	if pos == posLower {
		if m, ok := builtins.MutableCounterpart(name); ok {
			name = m
		}
	}
	switch {
	case q.Mutability == qualifiers.ReadOnly && pos == posLower:
		if ro, ok := builtins.ReadOnlyCounterpart(name); ok {
			name = ro
		}
	case q.Mutability == qualifiers.Mutable && pos == posUpper:
		if m, ok := builtins.MutableCounterpart(name); ok {
			name = m
		}
	}
	return name
}

// enhanceArgs walks the declared arguments with a cursor starting right
// after the classifier's own index. A wildcard converts through the
// projection path and consumes exactly one index; an ordinary argument
// is enhanced recursively and consumes its subtree span.
func enhanceArgs(n *foreign.Node, sym symbols.Ref, pos boundPosition, lookup qualifiers.Lookup, env Env, index int) ([]types.Projection, error) {
	if len(n.Args) == 0 {
		return nil, nil
	}
	args := make([]types.Projection, 0, len(n.Args))
	cursor := index + 1
	for i, a := range n.Args {
		if a.IsWildcard() {
			proj, err := convertWildcard(a.Wildcard, declaredParam(sym, i), env)
			if err != nil {
				return nil, err
			}
			args = append(args, proj)
			cursor++
			continue
		}
		nested, err := enhanceAt(a.Type, lookup, env, cursor)
		if err != nil {
			return nil, err
		}
		args = append(args, types.Invariant(pickBound(nested, pos)))
		cursor += foreign.SubtreeSize(a.Type)
	}
	return args, nil
}

// pickBound keeps the bound of a nested flexible result that matches
// the enclosing position. This is the documented projection convention:
// it keeps an explicit upper-bound override on a nested argument
// visible in the enclosing upper bound (and likewise for lower).
func pickBound(r types.Resolved, pos boundPosition) *types.Concrete {
	if pos == posUpper {
		return r.Upper
	}
	return r.Lower
}

// declaredParam returns the class's declared type parameter at the
// argument position, or a zero declaration when the symbol has none
// (raw use sites, type-parameter symbols).
func declaredParam(sym symbols.Ref, i int) symbols.TypeParamDecl {
	if sym.Kind != symbols.KindClass {
		return symbols.TypeParamDecl{}
	}
	if i < 0 || i >= len(sym.Class.Params) {
		return symbols.TypeParamDecl{}
	}
	return sym.Class.Params[i]
}

// nullableFor applies the nullability policy: an enhanced bound obeys
// explicit qualifiers and otherwise brackets the unknown (non-null
// below, nullable above); an inflexible position assumes nothing.
func nullableFor(pos boundPosition, n qualifiers.Nullability) bool {
	if !pos.shouldEnhance() {
		return pos == posUpper
	}
	switch n {
	case qualifiers.Nullable:
		return true
	case qualifiers.NotNull:
		return false
	default:
		return pos == posUpper
	}
}
