package qualifiers

import "alloy/internal/annotations"

// Annotation simple names recognized as qualifier sources. Matching is
// by simple name so both bare and fully-qualified spellings apply.
const (
	annNullable = "Nullable"
	annNotNull  = "NotNull"
	annReadOnly = "ReadOnly"
	annMutable  = "Mutable"
)

// FromAnnotations derives the qualifiers of a single declaration site
// from its raw annotation set. A qualifier annotation carrying a
// "warning" string argument binds softly (reported, not enforced).
func FromAnnotations(set annotations.Set) Qualifiers {
	var q Qualifiers
	if a, ok := set.Find(annNullable); ok {
		q.Nullability = Nullable
		q.WarningOnly = q.WarningOnly || isWarning(a)
	}
	if a, ok := set.Find(annNotNull); ok {
		q.Nullability = NotNull
		q.WarningOnly = q.WarningOnly || isWarning(a)
	}
	if a, ok := set.Find(annReadOnly); ok {
		q.Mutability = ReadOnly
		q.WarningOnly = q.WarningOnly || isWarning(a)
	}
	if a, ok := set.Find(annMutable); ok {
		q.Mutability = Mutable
		q.WarningOnly = q.WarningOnly || isWarning(a)
	}
	return q
}

func isWarning(a annotations.Annotation) bool {
	for _, arg := range a.Args {
		if arg == "warning" {
			return true
		}
	}
	return false
}
