package validate

import "strings"

const (
	// nestedSeparator is the inner-class marker some tools emit in
	// fully-qualified class names (e.g. "com.acme.Outer$Inner").
	nestedSeparator = "$"

	// canonicalSeparator is what nested separators are normalized to.
	canonicalSeparator = "."

	// keySeparator joins class name and field name in a comparison key.
	keySeparator = "::"
)

// NormalizeClassName maps a class name to its canonical form by replacing
// every nested-class separator with the canonical separator. It performs no
// other transformation: no case folding, no whitespace trimming. The result
// is idempotent under repeated normalization.
func NormalizeClassName(name string) string {
	return strings.ReplaceAll(name, nestedSeparator, canonicalSeparator)
}

// BuildKey returns the comparison key for a finding: the normalized class
// name joined with the field name. Two findings are the same finding iff
// their keys are equal. An absent field name degrades to "Class::" rather
// than failing, so reconciliation stays total over malformed records.
func BuildKey(f Finding) string {
	return NormalizeClassName(f.ClassName) + keySeparator + f.FieldName
}
