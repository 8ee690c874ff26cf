package foreign

import "fmt"

// Kind enumerates the node kinds of a foreign type tree.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindClassifier
	KindTypeParam
	KindArray
	KindPrimitive
	KindUnresolved
)

func (k Kind) String() string {
	switch k {
	case KindClassifier:
		return "classifier"
	case KindTypeParam:
		return "typeparam"
	case KindArray:
		return "array"
	case KindPrimitive:
		return "primitive"
	case KindUnresolved:
		return "unresolved"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Variance is the use-site variance of a foreign wildcard.
type Variance uint8

const (
	VarianceNone    Variance = iota // unbounded wildcard
	VarianceExtends                 // upper-bounded (covariant use)
	VarianceSuper                   // lower-bounded (contravariant use)
)

func (v Variance) String() string {
	switch v {
	case VarianceExtends:
		return "extends"
	case VarianceSuper:
		return "super"
	default:
		return "none"
	}
}

// Node is one node of an immutable foreign type tree.
//
// A classifier node denotes a declared class (Class set) or a type
// parameter (Param set); a classifier with neither is unknown and falls
// out of enhancement. Array nodes carry the element in Elem. Primitive
// and unresolved nodes keep the raw spelling in Name.
type Node struct {
	Kind  Kind
	Class string // fully-qualified foreign class name
	Param string // type-parameter name
	Args  []Arg  // classifier type arguments, declared order
	Elem  *Node  // array element
	Name  string // primitive / unresolved spelling
}

// Arg is one type argument of a classifier node: either an ordinary
// type or a wildcard. Exactly one field is set.
type Arg struct {
	Type     *Node
	Wildcard *Wildcard
}

// Wildcard is a use-site variance marker in argument position.
// Bound is nil for an unbounded wildcard.
type Wildcard struct {
	Variance Variance
	Bound    *Node
}

// IsWildcard reports whether the argument is a wildcard.
func (a Arg) IsWildcard() bool { return a.Wildcard != nil }

// ClassifierIsClass reports whether the node is a classifier denoting a
// declared class.
func (n *Node) ClassifierIsClass() bool {
	return n != nil && n.Kind == KindClassifier && n.Class != ""
}

// ClassifierIsTypeParam reports whether the node is a classifier
// denoting a type parameter.
func (n *Node) ClassifierIsTypeParam() bool {
	return n != nil && n.Kind == KindClassifier && n.Class == "" && n.Param != ""
}

// Constructors -----------------------------------------------------------

// ClassType builds a classifier node for a declared class.
func ClassType(name string, args ...Arg) *Node {
	return &Node{Kind: KindClassifier, Class: name, Args: args}
}

// ParamType builds a classifier node denoting a type parameter.
func ParamType(name string) *Node {
	return &Node{Kind: KindClassifier, Param: name}
}

// ParamRef builds a bare type-parameter reference outside classifier
// position. It never takes the flexible path.
func ParamRef(name string) *Node {
	return &Node{Kind: KindTypeParam, Param: name}
}

// ArrayOf builds an array node.
func ArrayOf(elem *Node) *Node {
	return &Node{Kind: KindArray, Elem: elem}
}

// Primitive builds a primitive node (int, boolean, ...).
func Primitive(name string) *Node {
	return &Node{Kind: KindPrimitive, Name: name}
}

// Unresolved builds a node for a classifier the foreign model could not
// resolve.
func Unresolved(name string) *Node {
	return &Node{Kind: KindUnresolved, Name: name}
}

// TypeArg wraps an ordinary type as an argument.
func TypeArg(n *Node) Arg { return Arg{Type: n} }

// WildcardArg wraps a wildcard as an argument.
func WildcardArg(variance Variance, bound *Node) Arg {
	return Arg{Wildcard: &Wildcard{Variance: variance, Bound: bound}}
}

// String renders the node back into the textual foreign notation.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case KindClassifier:
		base := n.Class
		if base == "" {
			base = n.Param
		}
		if len(n.Args) == 0 {
			return base
		}
		out := base + "<"
		for i, a := range n.Args {
			if i > 0 {
				out += ", "
			}
			out += a.String()
		}
		return out + ">"
	case KindTypeParam:
		return n.Param
	case KindArray:
		return n.Elem.String() + "[]"
	case KindPrimitive, KindUnresolved:
		return n.Name
	default:
		return "<invalid>"
	}
}

func (a Arg) String() string {
	if a.Wildcard != nil {
		w := a.Wildcard
		if w.Bound == nil {
			return "?"
		}
		return "? " + w.Variance.String() + " " + w.Bound.String()
	}
	return a.Type.String()
}
