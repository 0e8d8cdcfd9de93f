package obo

import "strings"

// CompareIdents orders two identifiers of the same variant,
// lexicographically on their canonical rendering, returning a negative,
// zero, or positive value. Ordering across variants is deliberately
// undefined and returns a *TypeError; use plain equality to compare
// identifiers of arbitrary variants.
func CompareIdents(a, b Ident) (int, error) {
	if a == nil {
		return 0, &TypeError{Field: "left operand", Expected: "Ident", Actual: "nil"}
	}
	if b == nil {
		return 0, &TypeError{Field: "right operand", Expected: "Ident", Actual: "nil"}
	}
	if a.Kind() != b.Kind() {
		return 0, &TypeError{Field: "right operand", Expected: a.Kind().String(), Actual: b.Kind().String()}
	}
	return strings.Compare(a.String(), b.String()), nil
}
