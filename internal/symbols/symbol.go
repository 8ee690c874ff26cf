// Package symbols holds the host-side symbol model the enhancement core
// resolves foreign classifiers against.
package symbols

import "strings"

// ClassName is a fully-qualified host class identity.
type ClassName string

// Simple returns the last dot-separated segment of the name.
func (c ClassName) Simple() string {
	s := string(c)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Variance is the declared variance of a class type parameter.
type Variance uint8

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

func (v Variance) String() string {
	switch v {
	case Covariant:
		return "out"
	case Contravariant:
		return "in"
	default:
		return ""
	}
}

// TypeParamDecl is one declared type parameter of a class.
type TypeParamDecl struct {
	Name     string
	Variance Variance
}

// Class is a resolved host class symbol.
type Class struct {
	Name   ClassName
	Params []TypeParamDecl
}

// TypeParam is a resolved type-parameter symbol. Identity is by
// pointer: one provider hands out one symbol per name.
type TypeParam struct {
	Name string
}

// Kind discriminates the closed symbol variant.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindClass
	KindTypeParam
)

// Ref is a closed tagged reference to a resolved symbol: exactly one
// payload field matches Kind. New symbol kinds extend the variant; no
// open-ended dispatch.
type Ref struct {
	Kind  Kind
	Class *Class
	Param *TypeParam
}

// ClassRef wraps a class symbol.
func ClassRef(c *Class) Ref { return Ref{Kind: KindClass, Class: c} }

// ParamRef wraps a type-parameter symbol.
func ParamRef(p *TypeParam) Ref { return Ref{Kind: KindTypeParam, Param: p} }

// IsClass reports whether the reference denotes a class symbol.
func (r Ref) IsClass() bool { return r.Kind == KindClass }

func (r Ref) String() string {
	switch r.Kind {
	case KindClass:
		return string(r.Class.Name)
	case KindTypeParam:
		return r.Param.Name
	default:
		return "<invalid>"
	}
}

// Resolver resolves a host class identity to its symbol. The arity of
// the use site is passed so lenient resolvers can fabricate a symbol
// with matching parameter count; strict resolvers ignore it. A missing
// class is a contract violation of the input and surfaces as an error,
// never a panic.
type Resolver interface {
	ResolveClass(name ClassName, arity int) (*Class, error)
}

// TypeParamProvider hands out type-parameter symbols, creating them on
// first use. The same name always yields the same symbol.
type TypeParamProvider interface {
	TypeParam(name string) *TypeParam
}
