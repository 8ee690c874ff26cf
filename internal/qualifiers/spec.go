package qualifiers

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSpec reads one compact qualifier binding of the form
// `IDX:FLAG[,FLAG...]` where FLAG is notnull, nullable, readonly,
// mutable or soft. Used by listing files and the --qualifier flag.
func ParseSpec(spec string) (int, Qualifiers, error) {
	colon := strings.IndexByte(spec, ':')
	if colon < 0 {
		return 0, Qualifiers{}, fmt.Errorf("qualifier %q: expected IDX:FLAGS", spec)
	}
	index, err := strconv.Atoi(spec[:colon])
	if err != nil || index < 0 {
		return 0, Qualifiers{}, fmt.Errorf("qualifier %q: bad index", spec)
	}
	var q Qualifiers
	for _, flag := range strings.Split(spec[colon+1:], ",") {
		switch strings.TrimSpace(flag) {
		case "notnull":
			q.Nullability = NotNull
		case "nullable":
			q.Nullability = Nullable
		case "readonly":
			q.Mutability = ReadOnly
		case "mutable":
			q.Mutability = Mutable
		case "soft":
			q.WarningOnly = true
		default:
			return 0, Qualifiers{}, fmt.Errorf("qualifier %q: unknown flag %q", spec, flag)
		}
	}
	return index, q, nil
}

// ParseSpecs folds several bindings into a Table. A later binding for
// the same index replaces the earlier one.
func ParseSpecs(specs []string) (Table, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	table := make(Table, len(specs))
	for _, spec := range specs {
		index, q, err := ParseSpec(spec)
		if err != nil {
			return nil, err
		}
		table[index] = q
	}
	return table, nil
}
