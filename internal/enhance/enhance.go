// Package enhance turns foreign type trees into richly qualified host
// types. Nullability and container mutability are not tracked by the
// foreign side; they arrive as a position-indexed qualifier source and
// get correlated to nodes by the index protocol of internal/foreign.
//
// The transformation is pure and re-entrant: all inputs are immutable,
// the only shared state is the identity tables of internal/builtins,
// and collaborator calls (class resolution, type-parameter symbols) are
// synchronous.
package enhance

import (
	"fmt"

	"alloy/internal/annotations"
	"alloy/internal/foreign"
	"alloy/internal/qualifiers"
	"alloy/internal/symbols"
	"alloy/internal/types"
)

// Env bundles the resolution collaborators of one enhancement scope.
type Env struct {
	Classes symbols.Resolver
	Params  symbols.TypeParamProvider
}

// Enhance resolves one foreign type tree into a host type.
//
// A classifier node becomes a flexible pair: the same node is enhanced
// once per bound at index 0 and the results are paired. Any other node
// kind cannot carry foreign nullability ambiguity and converts
// directly into a single non-nullable type.
//
// lookup may be nil; the qualifiers of the root slot are then derived
// from the reference's own annotations (an all-zero derivation behaves
// exactly like an all-unknown lookup). When a lookup is supplied it
// wins: the producer has already folded annotations in.
func Enhance(node *foreign.Node, anns annotations.Set, lookup qualifiers.Lookup, env Env) (types.Resolved, error) {
	if node == nil {
		return types.Resolved{}, fmt.Errorf("enhance: nil foreign node")
	}
	if lookup == nil {
		if q := qualifiers.FromAnnotations(anns); !q.IsZero() {
			lookup = qualifiers.Table{0: q}.Lookup
		} else {
			lookup = qualifiers.None
		}
	}
	res, err := enhanceAt(node, lookup, env, 0)
	if err != nil {
		return types.Resolved{}, fmt.Errorf("enhance %s: %w", node, err)
	}
	return res, nil
}

func enhanceAt(n *foreign.Node, lookup qualifiers.Lookup, env Env, index int) (types.Resolved, error) {
	if n.Kind == foreign.KindClassifier && (n.ClassifierIsClass() || n.ClassifierIsTypeParam()) {
		lower, err := enhanceBound(n, posLower, lookup, env, index)
		if err != nil {
			return types.Resolved{}, err
		}
		upper, err := enhanceBound(n, posUpper, lookup, env, index)
		if err != nil {
			return types.Resolved{}, err
		}
		return types.MakeFlexible(lower, upper), nil
	}
	single, err := convertDirect(n, env)
	if err != nil {
		return types.Resolved{}, err
	}
	return types.Single(single), nil
}
