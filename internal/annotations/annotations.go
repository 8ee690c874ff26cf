// Package annotations models the raw annotation set attached to a
// foreign type reference or parameter.
package annotations

import (
	"fmt"
	"strings"
)

// Annotation is one resolved annotation: a name plus string-literal
// arguments. A marker annotation has no arguments.
type Annotation struct {
	Name string
	Args []string
}

// SimpleName returns the last dot-separated segment of the name.
func (a Annotation) SimpleName() string {
	if i := strings.LastIndexByte(a.Name, '.'); i >= 0 {
		return a.Name[i+1:]
	}
	return a.Name
}

// Set is the ordered annotation list of one declaration site.
type Set []Annotation

// Find returns the first annotation whose simple name matches.
func (s Set) Find(simpleName string) (Annotation, bool) {
	for _, a := range s {
		if a.SimpleName() == simpleName {
			return a, true
		}
	}
	return Annotation{}, false
}

// Parse reads the textual annotation notation used by listings and the
// CLI: whitespace-separated `@Name` or `@Name("literal", ...)` tokens.
func Parse(input string) (Set, error) {
	var set Set
	rest := strings.TrimSpace(input)
	for rest != "" {
		if rest[0] != '@' {
			return nil, fmt.Errorf("annotations %q: expected '@'", input)
		}
		rest = rest[1:]
		end := 0
		for end < len(rest) && isNameByte(rest[end]) {
			end++
		}
		if end == 0 {
			return nil, fmt.Errorf("annotations %q: missing annotation name", input)
		}
		ann := Annotation{Name: rest[:end]}
		rest = rest[end:]
		if strings.HasPrefix(rest, "(") {
			close := strings.IndexByte(rest, ')')
			if close < 0 {
				return nil, fmt.Errorf("annotations %q: missing ')'", input)
			}
			args, err := parseArgs(rest[1:close])
			if err != nil {
				return nil, fmt.Errorf("annotations %q: %w", input, err)
			}
			ann.Args = args
			rest = rest[close+1:]
		}
		set = append(set, ann)
		rest = strings.TrimSpace(rest)
	}
	return set, nil
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.' || c == '$':
		return true
	}
	return false
}

func parseArgs(body string) ([]string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}
	var args []string
	for _, part := range strings.Split(body, ",") {
		part = strings.TrimSpace(part)
		if len(part) < 2 || part[0] != '"' || part[len(part)-1] != '"' {
			return nil, fmt.Errorf("argument %q is not a string literal", part)
		}
		args = append(args, part[1:len(part)-1])
	}
	return args, nil
}
