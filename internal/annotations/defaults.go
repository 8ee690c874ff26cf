package annotations

// Names of the declared-default annotations recognized on parameters.
const (
	defaultValueAnnotation = "DefaultValue"
	defaultNullAnnotation  = "DefaultNull"
)

// DefaultKind classifies a declared parameter default.
type DefaultKind uint8

const (
	DefaultString DefaultKind = iota
	DefaultNull
)

// Default is a declared default value extracted from parameter
// annotations.
type Default struct {
	Kind  DefaultKind
	Value string // set for DefaultString
}

// DeclaredDefault inspects a parameter's annotations for a declared
// default. A DefaultValue annotation with a literal string argument
// wins over a DefaultNull marker; the first match is taken.
func DeclaredDefault(s Set) (Default, bool) {
	if a, ok := s.Find(defaultValueAnnotation); ok && len(a.Args) > 0 {
		return Default{Kind: DefaultString, Value: a.Args[0]}, true
	}
	if _, ok := s.Find(defaultNullAnnotation); ok {
		return Default{Kind: DefaultNull}, true
	}
	return Default{}, false
}
