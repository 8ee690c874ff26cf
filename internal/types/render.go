package types

import (
	"strings"

	"alloy/internal/symbols"
)

// String renders the type with simple class names:
// `MutableMap<String, out Number?>`.
func (c *Concrete) String() string {
	if c == nil {
		return "<nil>"
	}
	var b strings.Builder
	switch c.Symbol.Kind {
	case symbols.KindClass:
		b.WriteString(c.Symbol.Class.Name.Simple())
	case symbols.KindTypeParam:
		b.WriteString(c.Symbol.Param.Name)
	default:
		b.WriteString("<invalid>")
	}
	if len(c.Args) > 0 {
		b.WriteByte('<')
		for i, a := range c.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.String())
		}
		b.WriteByte('>')
	}
	if c.Nullable {
		b.WriteByte('?')
	}
	return b.String()
}

func (p Projection) String() string {
	if p.Star {
		return "*"
	}
	if v := p.Variance.String(); v != "" {
		return v + " " + p.Type.String()
	}
	return p.Type.String()
}

// String renders a flexible pair as `Lower..Upper` and a single type
// as itself.
func (r Resolved) String() string {
	if !r.Flexible {
		return r.Lower.String()
	}
	return r.Lower.String() + ".." + r.Upper.String()
}
