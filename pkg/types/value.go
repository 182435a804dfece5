package types

// EmptyValue reports whether a field value counts as unset: nil, an empty
// string, or an empty sequence. Unset values are exempt from enum and unit
// validation.
func EmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	default:
		return false
	}
}

// NumericValue reports whether a scalar value is numeric.
func NumericValue(v any) bool {
	switch v.(type) {
	case int, int64, float64:
		return true
	default:
		return false
	}
}
