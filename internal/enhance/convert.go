package enhance

import (
	"fmt"

	"alloy/internal/builtins"
	"alloy/internal/foreign"
	"alloy/internal/symbols"
	"alloy/internal/types"
)

// convertDirect is the non-flexible conversion for nodes that cannot
// carry foreign nullability ambiguity: type parameters, primitives,
// arrays and unresolved nodes, plus classifiers falling out of the
// enhancement path. The result is always non-nullable.
func convertDirect(n *foreign.Node, env Env) (*types.Concrete, error) {
	switch n.Kind {
	case foreign.KindClassifier:
		return convertDirectClassifier(n, env)
	case foreign.KindTypeParam:
		return &types.Concrete{Symbol: symbols.ParamRef(env.Params.TypeParam(n.Param))}, nil
	case foreign.KindPrimitive:
		name, ok := builtins.HostPrimitive(n.Name)
		if !ok {
			return errorMarker(env)
		}
		cls, err := env.Classes.ResolveClass(name, 0)
		if err != nil {
			return nil, err
		}
		return &types.Concrete{Symbol: symbols.ClassRef(cls)}, nil
	case foreign.KindArray:
		elem, err := convertDirect(n.Elem, env)
		if err != nil {
			return nil, err
		}
		cls, err := env.Classes.ResolveClass(builtins.ArrayClass, 1)
		if err != nil {
			return nil, err
		}
		return &types.Concrete{
			Symbol: symbols.ClassRef(cls),
			Args:   []types.Projection{types.Invariant(elem)},
		}, nil
	case foreign.KindUnresolved:
		return errorMarker(env)
	default:
		return nil, fmt.Errorf("invalid foreign node kind %s", n.Kind)
	}
}

func convertDirectClassifier(n *foreign.Node, env Env) (*types.Concrete, error) {
	if n.ClassifierIsTypeParam() {
		return &types.Concrete{Symbol: symbols.ParamRef(env.Params.TypeParam(n.Param))}, nil
	}
	if !n.ClassifierIsClass() {
		return errorMarker(env)
	}
	name, ok := builtins.HostClass(n.Class)
	if !ok {
		name = symbols.ClassName(n.Class)
	}
	cls, err := env.Classes.ResolveClass(name, len(n.Args))
	if err != nil {
		return nil, err
	}
	sym := symbols.ClassRef(cls)
	args := make([]types.Projection, 0, len(n.Args))
	for i, a := range n.Args {
		if a.IsWildcard() {
			proj, err := convertWildcard(a.Wildcard, declaredParam(sym, i), env)
			if err != nil {
				return nil, err
			}
			args = append(args, proj)
			continue
		}
		nested, err := convertDirect(a.Type, env)
		if err != nil {
			return nil, err
		}
		args = append(args, types.Invariant(nested))
	}
	if len(args) == 0 {
		args = nil
	}
	return &types.Concrete{Symbol: sym, Args: args}, nil
}

// convertWildcard maps a use-site wildcard to a projection. Wildcards
// never participate in qualifier lookup: their bound converts through
// the direct path only.
func convertWildcard(w *foreign.Wildcard, decl symbols.TypeParamDecl, env Env) (types.Projection, error) {
	if w.Bound == nil || w.Variance == foreign.VarianceNone {
		return types.StarProjection(), nil
	}
	// An extends-bound of the foreign root type says nothing.
	if w.Variance == foreign.VarianceExtends && w.Bound.ClassifierIsClass() && w.Bound.Class == builtins.ObjectClass {
		return types.StarProjection(), nil
	}
	use := symbols.Covariant
	if w.Variance == foreign.VarianceSuper {
		use = symbols.Contravariant
	}
	// A declared variance pointing the other way makes the use-site
	// projection unrepresentable; collapse to star.
	if decl.Variance != symbols.Invariant && decl.Variance != use {
		return types.StarProjection(), nil
	}
	bound, err := convertDirect(w.Bound, env)
	if err != nil {
		return types.Projection{}, err
	}
	// The declared variance already implies the projection.
	if decl.Variance == use {
		return types.Invariant(bound), nil
	}
	return types.Variant(use, bound), nil
}

// errorMarker resolves the error-marker class so callers can degrade
// gracefully instead of aborting on unresolved foreign nodes.
func errorMarker(env Env) (*types.Concrete, error) {
	cls, err := env.Classes.ResolveClass(builtins.UnresolvedClass, 0)
	if err != nil {
		return nil, err
	}
	return &types.Concrete{Symbol: symbols.ClassRef(cls)}, nil
}
