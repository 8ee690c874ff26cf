package foreign

import (
	"fmt"
	"strings"
)

// primitiveNames is the closed set of foreign primitive spellings.
var primitiveNames = map[string]bool{
	"boolean": true,
	"byte":    true,
	"char":    true,
	"double":  true,
	"float":   true,
	"int":     true,
	"long":    true,
	"short":   true,
	"void":    true,
}

// Parse reads the textual foreign type notation used by listings and
// the CLI: `java.util.Map<java.lang.String, ? extends T>`, arrays as
// `T[]`, wildcards as `?`, `? extends X`, `? super X`. A dotless name
// that is not a primitive is taken as a type-parameter classifier.
func Parse(input string) (*Node, error) {
	p := &typeParser{src: input}
	n, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected trailing input %q", p.src[p.pos:])
	}
	return n, nil
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("foreign type %q at offset %d: %s", p.src, p.pos, fmt.Sprintf(format, args...))
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *typeParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *typeParser) eat(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func isIdentByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '$' || c == '.':
		return true
	}
	return false
}

func (p *typeParser) ident() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf("expected a name")
	}
	name := p.src[start:p.pos]
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") || strings.Contains(name, "..") {
		return "", p.errorf("malformed qualified name %q", name)
	}
	return name, nil
}

func (p *typeParser) parseType() (*Node, error) {
	p.skipSpace()
	name, err := p.ident()
	if err != nil {
		return nil, err
	}

	var n *Node
	switch {
	case primitiveNames[name]:
		n = Primitive(name)
	case strings.Contains(name, "."):
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		n = ClassType(name, args...)
	default:
		// Dotless and not a primitive: a type-parameter classifier.
		p.skipSpace()
		if p.peek() == '<' {
			return nil, p.errorf("type parameter %q cannot take arguments", name)
		}
		n = ParamType(name)
	}

	for {
		p.skipSpace()
		if !p.eat('[') {
			break
		}
		p.skipSpace()
		if !p.eat(']') {
			return nil, p.errorf("expected ']'")
		}
		n = ArrayOf(n)
	}
	return n, nil
}

func (p *typeParser) parseArgs() ([]Arg, error) {
	p.skipSpace()
	if !p.eat('<') {
		return nil, nil
	}
	var args []Arg
	for {
		p.skipSpace()
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipSpace()
		if p.eat(',') {
			continue
		}
		if p.eat('>') {
			return args, nil
		}
		return nil, p.errorf("expected ',' or '>'")
	}
}

func (p *typeParser) parseArg() (Arg, error) {
	p.skipSpace()
	if !p.eat('?') {
		n, err := p.parseType()
		if err != nil {
			return Arg{}, err
		}
		return TypeArg(n), nil
	}

	p.skipSpace()
	rest := p.src[p.pos:]
	switch {
	case strings.HasPrefix(rest, "extends "):
		p.pos += len("extends ")
		bound, err := p.parseType()
		if err != nil {
			return Arg{}, err
		}
		return WildcardArg(VarianceExtends, bound), nil
	case strings.HasPrefix(rest, "super "):
		p.pos += len("super ")
		bound, err := p.parseType()
		if err != nil {
			return Arg{}, err
		}
		return WildcardArg(VarianceSuper, bound), nil
	default:
		return WildcardArg(VarianceNone, nil), nil
	}
}
